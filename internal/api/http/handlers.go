package httpapi

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"vastburgers/internal/domain"
	"vastburgers/internal/service"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"
)

type Handler struct {
	Cart     service.CartServiceInterface
	Checkout service.CheckoutServiceInterface
	History  service.HistoryServiceInterface
	Status   service.StatusSimulator

	// Catalog proxies read-only browsing to the remote catalog service.
	Catalog http.Handler

	// PublicURL is the storefront origin encoded into receipt QR codes.
	PublicURL string
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{id}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/checkout", h.placeOrder).Methods("POST")

	r.HandleFunc("/api/orders", h.getOrderHistory).Methods("GET")
	r.HandleFunc("/api/orders/status", h.getOrderStatus).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	if h.Catalog != nil {
		r.PathPrefix("/api/burgers").Handler(h.Catalog).Methods("GET")
		r.PathPrefix("/api/drinks").Handler(h.Catalog).Methods("GET")
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"service": "storefront",
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// writeCart responds with the cart plus its derived badge count and
// total. Both are recomputed from the cart itself on every response.
func writeCart(w http.ResponseWriter, cart domain.Cart) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"cart":       cart,
		"count":      len(cart),
		"totalPrice": domain.TotalPrice(cart),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Cart.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeCart(w, cart)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Cart.AddItem(r.Context(), item)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeCart(w, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	cart, err := h.Cart.RemoveItem(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeCart(w, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeCart(w, domain.Cart{})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Checkout.PlaceOrder(r.Context())
	if err != nil {
		// The cart is preserved; the shopper may retry manually.
		log.Printf("[storefront] order submission failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getOrderHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.History.History(r.Context())

	response := map[string]interface{}{
		"items":      history.Items,
		"count":      len(history.Items),
		"totalPrice": history.TotalPrice,
		"status":     history.Status,
	}
	if err != nil {
		// Degrade to an empty list plus a dismissible notice.
		log.Printf("[storefront] order history unavailable: %v", err)
		response["notice"] = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": h.Status.Current(),
	})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	qrData := fmt.Sprintf("%s/cart/shopping/orders?order_id=%d", h.PublicURL, id)
	qr, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
