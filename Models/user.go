package Models

// User is an account allowed to operate on the checklist. Permission levels
// follow the usual scheme: 1 read, 3 edit, 4 admin.
type User struct {
	ID         uint   `json:"id" gorm:"primarykey"`
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	Password   []byte `json:"-"`
	Permission int    `json:"permission"`
}
