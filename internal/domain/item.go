package domain

// ItemCollection is the store collection backing items.
const ItemCollection = "items"

// Item is a titled message.
type Item struct {
	Meta    `bson:",inline"`
	Title   string `bson:"title"`
	Message string `bson:"message"`
}

// Fields returns the client-mutable fields, keyed by stored name.
func (it *Item) Fields() map[string]any {
	return map[string]any{"title": it.Title, "message": it.Message}
}

// ItemView is the JSON representation of an Item.
type ItemView struct {
	ID        string `json:"_id,omitempty"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// View maps it to its wire shape.
func (it *Item) View() any {
	return ItemView{
		ID:        it.WireID(),
		Title:     it.Title,
		Message:   it.Message,
		CreatedAt: Millis(it.CreatedAt),
		UpdatedAt: Millis(it.UpdatedAt),
	}
}

// ItemInput is the create/update payload for an item.
type ItemInput struct {
	Title   string `json:"title" validate:"min=1,max=140"`
	Message string `json:"message" validate:"max=1400"`
}

// Record builds an unpersisted Item from the payload.
func (in ItemInput) Record() *Item {
	return &Item{Title: in.Title, Message: in.Message}
}
