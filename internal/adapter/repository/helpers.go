package repository

import "strings"

// isDuplicateKey detecta violaciones de unicidad del driver
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
