package financeRepository

import (
	"strings"
)

// buildFilteredQuery appends the WHERE clause for filter to a SELECT.
// typeColumn is empty for tables without a type filter.
func buildFilteredQuery(base string, filter Filter, typeColumn string) (string, map[string]interface{}) {
	conditions := []string{"user_id = :user_id"}
	argsKV := map[string]interface{}{"user_id": filter.UserID}

	if !filter.From.IsZero() {
		conditions = append(conditions, "date >= :date_from")
		argsKV["date_from"] = filter.From
	}

	if !filter.To.IsZero() {
		conditions = append(conditions, "date < :date_to")
		argsKV["date_to"] = filter.To
	}

	if filter.Type != "" && typeColumn != "" {
		conditions = append(conditions, typeColumn+" = :type")
		argsKV["type"] = filter.Type
	}

	if filter.Category != "" {
		conditions = append(conditions, "LOWER(category) = LOWER(:category)")
		argsKV["category"] = filter.Category
	}

	return base + "WHERE " + strings.Join(conditions, " AND ") + orderMostRecent, argsKV
}
