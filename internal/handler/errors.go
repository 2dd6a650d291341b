package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Header / parameter error messages
	ErrMsgMissingUserHeader = "Missing or invalid X-User-Id header"
	ErrMsgInvalidPathParam  = "Invalid %s path parameter"
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Admin management error messages
	ErrMsgGetUserFailed    = "Failed to retrieve user"
	ErrMsgListUsersFailed  = "Failed to list users"
	ErrMsgUpdateUserFailed = "Failed to update user"
	ErrMsgDeleteUserFailed = "Failed to delete user"

	// Collection / wishlist error messages
	ErrMsgAdjustQuantitiesFailed = "Failed to adjust quantities"
	ErrMsgGetCollectionFailed    = "Failed to retrieve collection"
	ErrMsgGetWishlistFailed      = "Failed to retrieve wishlist"
	ErrMsgMoveToCollectionFailed = "Failed to move cards to collection"

	// Catalog error messages
	ErrMsgSearchCardsFailed  = "Failed to search cards"
	ErrMsgGetCardFailed      = "Failed to retrieve card"
	ErrMsgGetPrintingsFailed = "Failed to retrieve printings"

	// Price error messages
	ErrMsgGetPriceHistoryFailed = "Failed to retrieve price history"

	// Deck error messages
	ErrMsgCreateDeckFailed   = "Failed to create deck"
	ErrMsgGetDeckFailed      = "Failed to retrieve deck"
	ErrMsgListDecksFailed    = "Failed to list decks"
	ErrMsgUpdateDeckFailed   = "Failed to update deck"
	ErrMsgDeleteDeckFailed   = "Failed to delete deck"
	ErrMsgSetDeckCardsFailed = "Failed to update deck cards"

	// Import source error messages
	ErrMsgCreateSourceFailed = "Failed to create import source"
	ErrMsgListSourcesFailed  = "Failed to list import sources"
	ErrMsgUpdateSourceFailed = "Failed to update import source"
	ErrMsgDeleteSourceFailed = "Failed to delete import source"
)

// User-facing messages mapped from domain errors.
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgCardNotFoundError   = "Card not found"
	ErrMsgPrintingNotFoundErr = "Printing not found"
	ErrMsgDeckNotFoundError   = "Deck not found"
	ErrMsgNotDeckOwnerError   = "You do not own that deck"
	ErrMsgSourceNotFoundError = "Import source not found"
	ErrMsgLastAdminError      = "At least one administrator must remain."
	ErrMsgUsernameTakenError  = "Username already taken"
)
