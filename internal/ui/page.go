package ui

// Page is one of the top-level screens reachable from the header.
type Page int

const (
	PageHome Page = iota
	PageAbout
	PagePosts
	PageUsers
	numPages
)

var pageTitles = [...]string{
	PageHome:  "Home",
	PageAbout: "About",
	PagePosts: "Posts",
	PageUsers: "Users",
}

var _ = [1]struct{}{}[len(pageTitles)-int(numPages)]

// Pages lists the header entries in display order.
var Pages = []Page{PageHome, PageAbout, PagePosts, PageUsers}

func (p Page) String() string {
	if p < 0 || p >= numPages {
		return "Unknown"
	}
	return pageTitles[p]
}

// Next returns the page after p, wrapping around.
func (p Page) Next() Page { return (p + 1) % numPages }

// Prev returns the page before p, wrapping around.
func (p Page) Prev() Page { return (p + numPages - 1) % numPages }
