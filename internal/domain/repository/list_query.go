package repository

// ListQuery filters and pages a listing. Search matches name fields,
// Tags narrows to records carrying every given tag.
type ListQuery struct {
	Search string
	Tags   []string
	Limit  int
	Offset int
}
