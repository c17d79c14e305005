package service

// Removing an adopted habit resolves into one of three outcomes. The branch
// determines both what gets deleted and the message surfaced to the caller,
// so it is kept as an explicit decision table rather than nested conditionals.
//
//	customOwned  hasOverride  outcome
//	true         any          delete the habit itself (ledger/status rows cascade)
//	false        true         delete the ledger entry; habit reverts to its default name
//	false        false        delete the ledger entry
type removalKey struct {
	customOwned bool // habit is custom and owned by the removing user
	hasOverride bool // ledger entry carries a non-empty display-name override
}

type removalOutcome struct {
	deleteHabit bool // delete the habit row instead of just the ledger entry
	message     string
}

var removalTable = map[removalKey]removalOutcome{
	{customOwned: true, hasOverride: false}:  {deleteHabit: true, message: "Custom habit deleted"},
	{customOwned: true, hasOverride: true}:   {deleteHabit: true, message: "Custom habit deleted"},
	{customOwned: false, hasOverride: true}:  {deleteHabit: false, message: "Habit reverted to predefined"},
	{customOwned: false, hasOverride: false}: {deleteHabit: false, message: "Habit removed from my habits"},
}

// resolveRemoval looks up the outcome for a removal request.
func resolveRemoval(customOwned, hasOverride bool) removalOutcome {
	return removalTable[removalKey{customOwned: customOwned, hasOverride: hasOverride}]
}
