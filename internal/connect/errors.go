package connect

// User-facing messages surfaced by the session manager. They are fixed
// strings: callers render them verbatim and must not need to interpret
// provider error shapes.
const (
	// MsgInitFailed is reported when the account-info fetch fails for any
	// terminal reason on the current attempt.
	MsgInitFailed = "Failed to initialize Stripe. Please try again later."

	// MsgNoData is reported when the fetch succeeds but carries no client
	// secret, leaving nothing to initialize the embedding with.
	MsgNoData = "No data received from Stripe session."

	// MsgAllAttemptsFailed is reported after every retry of a not-yet-
	// provisioned account has been exhausted.
	MsgAllAttemptsFailed = "Failed to initialize Stripe after multiple attempts. Please try again later."
)
