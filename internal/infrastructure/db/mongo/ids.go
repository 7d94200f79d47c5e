package mongo

import "go.mongodb.org/mongo-driver/bson/primitive"

// objectIDs converts hex ids, dropping any that are not valid ObjectIDs.
// Malformed ids cannot match a stored document.
func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		out = append(out, oid)
	}
	return out
}

func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}
