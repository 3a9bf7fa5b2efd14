package searchselect

// Class tags placed on the rendered tree. Renderers and tests locate
// structural parts by these tags.
const (
	ClassContainer         = "searchSelect"
	ClassInput             = "searchSelect--Input"
	ClassDisplay           = "searchSelect--Display"
	ClassDisplayDisabled   = "searchSelect--Display--disabled"
	ClassResult            = "searchSelect--Result"
	ClassPlaceholder       = "searchSelect--Placeholder"
	ClassWrapper           = "searchSelect--Wrapper"
	ClassWrapperHidden     = "searchSelect--Wrapper--hidden"
	ClassWrapperRight      = "searchSelect--Wrapper--right"
	ClassDropdown          = "searchSelect--Dropdown"
	ClassOptions           = "searchSelect--Options"
	ClassOption            = "searchSelect--Option"
	ClassOptionSelected    = "searchSelect--Option--selected"
	ClassOptionHidden      = "searchSelect--Option--hidden"
	ClassOptionSubtext     = "searchSelect--Option-subtext"
	ClassSearch            = "searchSelect--Search"
	ClassSearchTop         = "searchSelect--Search--top"
	ClassSearchBottom      = "searchSelect--Search--bottom"
	ClassSearchBar         = "searchSelect--SearchBar"
	ClassNoMatch           = "searchSelect--noMatchField"
	ClassFillDismiss       = "searchSelect--FillDismiss"
	ClassFillDismissHidden = "searchSelect--FillDismiss--hidden"
	ClassNoSelect          = "noSelect"
)

// Data attributes carried by option entries.
const (
	AttrValue = "data-value"
	AttrLabel = "data-label"
	AttrInput = "data-input"
)
