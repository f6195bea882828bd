package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/onton-live/nft-minter/internal/store"
	"github.com/onton-live/nft-minter/internal/store/schema"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// Handler serves the read-only ops endpoints
type Handler struct {
	store store.Store
}

// NewHandler creates a new ops API handler
func NewHandler(st store.Store) *Handler {
	return &Handler{store: st}
}

// collectionResponse is the API view of a collection
type collectionResponse struct {
	Address     string    `json:"address"`
	MetadataURL string    `json:"metadata_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// itemResponse is the API view of an NFT item
type itemResponse struct {
	ID           uint64    `json:"id"`
	OrderID      string    `json:"order_id"`
	OwnerAddress string    `json:"owner_address"`
	Index        *int64    `json:"index,omitempty"`
	Address      *string   `json:"address,omitempty"`
	MetadataURL  *string   `json:"metadata_url,omitempty"`
	State        string    `json:"state"`
	TryCount     int       `json:"try_count"`
	FailReason   *string   `json:"fail_reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// itemListResponse is a paged list of items
type itemListResponse struct {
	Items  []itemResponse `json:"items"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

func toCollectionResponse(collection schema.NFTCollection) collectionResponse {
	return collectionResponse{
		Address:     collection.Address,
		MetadataURL: collection.MetadataURL,
		CreatedAt:   collection.CreatedAt,
	}
}

func toItemResponse(item schema.NFTItem) itemResponse {
	return itemResponse{
		ID:           item.ID,
		OrderID:      item.OrderID,
		OwnerAddress: item.OwnerAddress,
		Index:        item.Index,
		Address:      item.Address,
		MetadataURL:  item.MetadataURL,
		State:        string(item.State),
		TryCount:     item.TryCount,
		FailReason:   item.FailReason,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// HealthCheck handles GET /healthz
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListCollections handles GET /v1/collections
func (h *Handler) ListCollections(c *gin.Context) {
	collections, err := h.store.ListCollections(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list collections")
		return
	}

	response := make([]collectionResponse, 0, len(collections))
	for _, collection := range collections {
		response = append(response, toCollectionResponse(collection))
	}

	c.JSON(http.StatusOK, gin.H{"collections": response})
}

// ListCollectionItems handles GET /v1/collections/:address/items
func (h *Handler) ListCollectionItems(c *gin.Context) {
	address := c.Param("address")

	limit, offset, ok := parsePageParams(c)
	if !ok {
		return
	}

	collection, err := h.store.GetCollectionByAddress(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, err, "Failed to load collection", zap.String("address", address))
		return
	}
	if collection == nil {
		respondNotFound(c, "Collection not found")
		return
	}

	items, total, err := h.store.ListCollectionItems(c.Request.Context(), collection.ID, limit, offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list collection items", zap.String("address", address))
		return
	}

	response := itemListResponse{
		Items:  make([]itemResponse, 0, len(items)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, item := range items {
		response.Items = append(response.Items, toItemResponse(item))
	}

	c.JSON(http.StatusOK, response)
}

// GetItemByOrder handles GET /v1/items/order/:orderID
func (h *Handler) GetItemByOrder(c *gin.Context) {
	orderID := c.Param("orderID")

	item, err := h.store.GetItemByOrderID(c.Request.Context(), orderID)
	if err != nil {
		respondInternalError(c, err, "Failed to load item", zap.String("order_id", orderID))
		return
	}
	if item == nil {
		respondNotFound(c, "Item not found")
		return
	}

	c.JSON(http.StatusOK, toItemResponse(*item))
}

// parsePageParams reads limit/offset query parameters, responding with 400 on
// invalid input
func parsePageParams(c *gin.Context) (int, int, bool) {
	limit := defaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondBadRequest(c, "Invalid limit parameter")
			return 0, 0, false
		}
		limit = parsed
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondBadRequest(c, "Invalid offset parameter")
			return 0, 0, false
		}
		offset = parsed
	}

	return limit, offset, true
}
