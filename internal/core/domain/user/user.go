package user

// User mirrors the upstream directory record. Field names follow the
// upstream JSON, which uses camelCase.
type User struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Gender     string  `json:"gender"`
	Image      string  `json:"image"`
	Age        int     `json:"age"`
	BloodGroup string  `json:"bloodGroup"`
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	BirthDate  string  `json:"birthDate"`
	Address    Address `json:"address"`
	Company    Company `json:"company"`
}

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Company struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Department string `json:"department"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
