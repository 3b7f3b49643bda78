package domain

// EditState is either NotEditing or Editing.
type EditState interface {
	isEditState()
}

type NotEditing struct{}

// DetachedIndex marks an edit buffer whose pizza was deleted from the cart.
const DetachedIndex = -1

// Editing holds the edit buffer and the cart index it came from.
type Editing struct {
	Pizza Pizza
	Index int
}

func (NotEditing) isEditState() {}
func (Editing) isEditState()    {}
