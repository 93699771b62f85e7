package models

// User is the current user's profile as held by the console.
// The zero value (all fields empty) is the default, signed-out state.
type User struct {
	FullName  string `json:"fullName"`
	ShortName string `json:"shortName"`
	Email     string `json:"email"`
}

// DisplayName returns ShortName when it is set and FullName otherwise.
// Emptiness of ShortName is the only discriminator, so an empty FullName
// simply yields an empty name.
func (u User) DisplayName() string {
	if u.ShortName == "" {
		return u.FullName
	}
	return u.ShortName
}

// IsEmpty reports whether u is the default empty record.
func (u User) IsEmpty() bool {
	return u == User{}
}

// UpdatedUser carries the profile fields submitted to the update operation.
// Fields are sent as given; empty values are not dropped.
type UpdatedUser struct {
	FullName  string `json:"fullName"`
	ShortName string `json:"shortName"`
	Email     string `json:"email"`
}

// UpdatedUserFrom seeds an UpdatedUser with the values of u.
func UpdatedUserFrom(u User) UpdatedUser {
	return UpdatedUser{FullName: u.FullName, ShortName: u.ShortName, Email: u.Email}
}
