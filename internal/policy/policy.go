// Package policy holds the authorization rule for resource mutation.
// Reads are public, mutations are author-only; the rule is stateless and
// evaluated per request.
package policy

// CanModify reports whether requesterID is allowed to update or delete a
// resource owned by authorID.
func CanModify(requesterID, authorID uint) bool {
	return requesterID == authorID
}
