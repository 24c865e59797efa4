package model

import "strings"

type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like_new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
	ConditionPoor    Condition = "poor"
)

var conditions = map[Condition]struct{}{
	ConditionNew:     {},
	ConditionLikeNew: {},
	ConditionGood:    {},
	ConditionFair:    {},
	ConditionPoor:    {},
}

// NormalizeCondition maps user input such as "Like New" onto the stored
// enum form ("like_new").
func NormalizeCondition(s string) Condition {
	return Condition(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_"))
}

func (c Condition) Valid() bool {
	_, ok := conditions[c]
	return ok
}
