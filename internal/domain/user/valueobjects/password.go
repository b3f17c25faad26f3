package valueobjects

import "fmt"

type Password struct {
	value string
}

func NewPassword(plainPassword string) (*Password, error) {
	if err := validatePassword(plainPassword); err != nil {
		return nil, err
	}

	return &Password{value: plainPassword}, nil
}

func (p *Password) String() string {
	return p.value
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}

	if len(password) > 72 {
		return fmt.Errorf("password must not exceed 72 characters (bcrypt limitation)")
	}

	return nil
}
