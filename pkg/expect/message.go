package expect

import (
	"fmt"
	"strings"

	"github.com/ib-77/expect/pkg/expect/inspect"
)

// Message renders a failure message for a. The negated template is picked when
// the negate flag is set; #{this}, #{exp} and #{act} are replaced with the
// subject, expected and actual values, and the custom message flag is prefixed.
func Message(a Flagged, msg, negateMsg string, expected, actual any) string {
	if negate, _ := Flag(a, FlagNegate).(bool); negate {
		msg = negateMsg
	}

	threshold := 0
	if owned, ok := a.(interface{ Registry() *Registry }); ok && owned.Registry() != nil {
		threshold = owned.Registry().Config().TruncateThreshold
	}

	if strings.Contains(msg, "#{") {
		msg = strings.NewReplacer(
			"#{this}", inspect.Display(Flag(a, FlagObject), threshold),
			"#{exp}", inspect.Display(expected, threshold),
			"#{act}", inspect.Display(actual, threshold),
		).Replace(msg)
	}

	if prefix := Flag(a, FlagMessage); prefix != nil {
		return fmt.Sprintf("%v: %s", prefix, msg)
	}
	return msg
}
