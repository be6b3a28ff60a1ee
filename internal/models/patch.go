package models

// UserPatch carries the optional fields of a partial user update
type UserPatch struct {
	Name  *string
	Email *string
}

// Apply copies every present field of the patch onto the user
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
}

// ItemPatch carries the optional fields of a partial item update
type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

// Apply copies every present field of the patch onto the item
func (p ItemPatch) Apply(i *Item) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Available != nil {
		i.Available = *p.Available
	}
}
