package services

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSONList stores a string slice as a JSON column value. A nil slice
// becomes an empty array, not NULL, so clients always see a list.
func toJSONList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}
