package domain

// MemoCollection is the store collection backing memos.
const MemoCollection = "memos"

// Memo is a short titled note.
type Memo struct {
	Meta    `bson:",inline"`
	Title   string `bson:"title"`
	Content string `bson:"content"`
}

// Fields returns the client-mutable fields, keyed by stored name.
func (m *Memo) Fields() map[string]any {
	return map[string]any{"title": m.Title, "content": m.Content}
}

// MemoView is the JSON representation of a Memo.
type MemoView struct {
	ID        string `json:"_id,omitempty" example:"65f1c0ffee0ddba11ca7f00d"`
	Title     string `json:"title" example:"Groceries"`
	Content   string `json:"content" example:"milk, eggs"`
	CreatedAt int64  `json:"created_at" example:"1718000000000"`
	UpdatedAt int64  `json:"updated_at" example:"1718000000000"`
}

// View maps m to its wire shape.
func (m *Memo) View() any {
	return MemoView{
		ID:        m.WireID(),
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: Millis(m.CreatedAt),
		UpdatedAt: Millis(m.UpdatedAt),
	}
}

// MemoInput is the create/update payload for a memo. Unknown fields,
// including any client-supplied `_id` or timestamps, are discarded on decode.
type MemoInput struct {
	Title   string `json:"title" validate:"min=1,max=140" example:"Groceries"`
	Content string `json:"content" validate:"max=1400" example:"milk, eggs"`
}

// Record builds an unpersisted Memo from the payload.
func (in MemoInput) Record() *Memo {
	return &Memo{Title: in.Title, Content: in.Content}
}
