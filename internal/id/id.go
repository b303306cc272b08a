package id

import "github.com/google/uuid"

// GenerateID returns a new UUIDv7 string. The leading bits are a millisecond
// timestamp, so ids generated later sort after earlier ones.
func GenerateID() string {
	u, err := uuid.NewV7()
	if err != nil {
		panic("id: uuid generation failed: " + err.Error())
	}
	return u.String()
}
