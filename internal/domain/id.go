package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// ID is the store-assigned document identifier (24 hex characters on the wire).
type ID = primitive.ObjectID

func NewID() ID {
	return primitive.NewObjectID()
}

// ParseID accepts only the canonical 24-hex form.
func ParseID(s string) (ID, bool) {
	if len(s) != 24 {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// FilterIDs keeps the string entries of raw that parse as ids, in order,
// without duplicates. Anything else is dropped.
func FilterIDs(raw []any) []ID {
	out := make([]ID, 0, len(raw))
	seen := make(map[ID]struct{}, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		id, ok := ParseID(s)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
