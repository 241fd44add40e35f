package transport

// Store operation results mirror the underlying document-store result
// shapes, so clients see the same counts/ids the store reported.

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// SettlementResult carries both halves of a checkout settlement: the
// recorded payment and the cart cleanup. The two store calls are not
// atomic, so both outcomes are reported even when one is partial.
type SettlementResult struct {
	PaymentResult InsertResult `json:"paymentResult"`
	DeleteResult  DeleteResult `json:"deleteResult"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type IntentRequest struct {
	Price float64 `json:"price"`
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// MenuItemPatch is the allow-listed field set a menu update may replace.
type MenuItemPatch struct {
	Name     string  `json:"name"     bson:"name"`
	Category string  `json:"category" bson:"category"`
	Price    float64 `json:"price"    bson:"price"`
	Recipe   string  `json:"recipe"   bson:"recipe"`
	Image    string  `json:"image"    bson:"image"`
}

type Stats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}
