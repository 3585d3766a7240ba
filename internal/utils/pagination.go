package utils

// Page is a fixed-size pagination request. Page numbers are 1-based;
// anything below 1 is read as the first page.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps a raw page number into a valid Page of the given size.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	return Page{Number: number, Size: size}
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns how many pages of the given size a total row count
// spans. An empty result still has one (empty) page.
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 1
	}
	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	return pages
}
