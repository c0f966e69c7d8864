// Package model defines the records exchanged between the fetch layer,
// the list store and the presentation components.
package model

// Item is a content record. Fetched items and user-created items share this
// shape; OwnerID is nil for records created locally.
type Item struct {
	ID      int
	Title   string
	Content string
	OwnerID *int
}

// Owner returns the owner id and whether one is set.
func (i Item) Owner() (int, bool) {
	if i.OwnerID == nil {
		return 0, false
	}
	return *i.OwnerID, true
}

// Post is the wire shape of an item as served by the remote API.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Item converts the wire record to an Item.
func (p Post) Item() Item {
	owner := p.UserID
	return Item{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Body,
		OwnerID: &owner,
	}
}

// ItemsFromPosts converts wire records preserving source order.
func ItemsFromPosts(posts []Post) []Item {
	items := make([]Item, len(posts))
	for i, p := range posts {
		items[i] = p.Item()
	}
	return items
}
