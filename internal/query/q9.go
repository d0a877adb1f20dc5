package query

import (
	"sort"
	"strings"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
)

// Q9: active users whose name starts with a prefix, ordered by name then
// id. The prefix match is case-sensitive.

type q9Args struct {
	prefix string
}

func parseQ9(args []string) (any, error) {
	if len(args) != 1 {
		return nil, errBadArgs
	}
	return q9Args{prefix: args[0]}, nil
}

func execQ9(env *Env, _ any, inst *Instance, w *Writer) error {
	a := inst.Args.(q9Args)
	var matches []*model.User
	env.DB.Users.ForEach(func(user *model.User) bool {
		if user.Active() && strings.HasPrefix(user.Name, a.prefix) {
			matches = append(matches, user)
		}
		return true
	})
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Name != matches[j].Name {
			return matches[i].Name < matches[j].Name
		}
		return matches[i].ID < matches[j].ID
	})
	for _, user := range matches {
		w.BeginObject()
		w.Field("id", user.ID)
		w.Field("name", user.Name)
	}
	return nil
}
