package entities

import "fmt"

// validationMessage renders "<subject> - Validation - <field> (<reason>) (<value>)".
func validationMessage(subject, field, reason, value string) string {
	return fmt.Sprintf("%s - Validation - %s (%s) (%s)", subject, field, reason, value)
}
