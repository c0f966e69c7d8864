package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostItem(t *testing.T) {
	p := Post{UserID: 3, ID: 7, Title: "t", Body: "b"}
	it := p.Item()

	assert.Equal(t, 7, it.ID)
	assert.Equal(t, "t", it.Title)
	assert.Equal(t, "b", it.Content)
	owner, ok := it.Owner()
	assert.True(t, ok)
	assert.Equal(t, 3, owner)
}

func TestItemsFromPosts_PreservesOrder(t *testing.T) {
	items := ItemsFromPosts([]Post{{ID: 5}, {ID: 2}, {ID: 9}})
	ids := []int{items[0].ID, items[1].ID, items[2].ID}
	assert.Equal(t, []int{5, 2, 9}, ids)
}

func TestItemOwner_Unset(t *testing.T) {
	_, ok := Item{ID: 1}.Owner()
	assert.False(t, ok)
}

func TestUserHelpers(t *testing.T) {
	u := User{
		Name:  "Leanne Graham",
		Phone: "1-770-736-8031 x56442",
		Address: Address{
			Street:  "Kulas Light",
			Suite:   "Apt. 556",
			City:    "Gwenborough",
			Zipcode: "92998-3874",
		},
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"initial", u.Initial(), "L"},
		{"full address", u.FullAddress(), "Kulas Light, Apt. 556, Gwenborough, 92998-3874"},
		{"primary phone", u.PrimaryPhone(), "1-770-736-8031"},
		{"empty initial", User{}.Initial(), "?"},
		{"phone without extension", User{Phone: "024-648-3804"}.PrimaryPhone(), "024-648-3804"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
