package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	activityapp "github.com/owuwix/wiishy/application/activity"
	authapp "github.com/owuwix/wiishy/application/auth"
	recommendationapp "github.com/owuwix/wiishy/application/recommendation"
	wishlistapp "github.com/owuwix/wiishy/application/wishlist"
	"github.com/owuwix/wiishy/constant"
	"github.com/owuwix/wiishy/model"
	utilsContext "github.com/owuwix/wiishy/utils/context"
	"github.com/owuwix/wiishy/utils/errors"
	validatorx "github.com/owuwix/wiishy/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AuthApp           authapp.AuthApp
	WishlistApp       wishlistapp.WishlistApp
	RecommendationApp recommendationapp.RecommendationApp
	ActivityApp       activityapp.ActivityApp
}

func NewTransport(AuthApp authapp.AuthApp, WishlistApp wishlistapp.WishlistApp, RecommendationApp recommendationapp.RecommendationApp, ActivityApp activityapp.ActivityApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:           AuthApp,
		WishlistApp:       WishlistApp,
		RecommendationApp: RecommendationApp,
		ActivityApp:       ActivityApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)

	// Protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/profile", rh.Profile).Methods(http.MethodGet)
	mux.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPut)
	mux.HandleFunc("/wishlists", rh.ListWishlists).Methods(http.MethodGet)
	mux.HandleFunc("/wishlists", rh.CreateWishlist).Methods(http.MethodPost)
	mux.HandleFunc("/wishlists/{id}", rh.GetWishlist).Methods(http.MethodGet)
	mux.HandleFunc("/wishlists/{id}", rh.UpdateWishlist).Methods(http.MethodPut)
	mux.HandleFunc("/wishlists/{id}", rh.DeleteWishlist).Methods(http.MethodDelete)
	mux.HandleFunc("/wishlists/{id}/items", rh.AddItem).Methods(http.MethodPost)
	mux.HandleFunc("/wishlists/{id}/items/{itemId}", rh.ReplaceItem).Methods(http.MethodPut)
	mux.HandleFunc("/wishlists/{id}/items/{itemId}", rh.RemoveItem).Methods(http.MethodDelete)
	mux.HandleFunc("/recommendations", rh.ListRecommendations).Methods(http.MethodGet)
	mux.HandleFunc("/activity", rh.RecentActivity).Methods(http.MethodGet)

	// Internal routes (static API key, used by the activity worker)
	internal := mux.PathPrefix("/internal/").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/v1/activity", rh.IngestActivity).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(AuthApp))

	return mux
}

// decodeAndValidate decodes the JSON body into req and validates it,
// writing the error response on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return false
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		if fields := validatorx.FieldErrorsFrom(err); fields != nil {
			writeError(w, errors.SetValidationError(fields))
		} else {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		}
		return false
	}
	return true
}

// Register handler
// @Summary Register user
// @Description Register a new user and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} transport.Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.AuthApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with username and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} transport.Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Clear the current session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := s.AuthApp.Logout(ctx, token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// Profile handler
// @Summary Current profile
// @Description Return the authenticated user's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse
// @Failure 401 {object} transport.Response
// @Router /profile [get]
func (s *RestHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.AuthApp.Profile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update profile
// @Description Merge the provided profile fields into the current user
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.ProfileResponse
// @Failure 401 {object} transport.Response
// @Router /profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.AuthApp.UpdateProfile(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListWishlists handler
// @Summary List wishlists
// @Description List the current user's wishlists in creation order
// @Tags Wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Wishlist
// @Router /wishlists [get]
func (s *RestHandler) ListWishlists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.WishlistApp.ListWishlists(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateWishlist handler
// @Summary Create wishlist
// @Tags Wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateWishlistRequest true "Wishlist"
// @Success 200 {object} model.Wishlist
// @Failure 400 {object} transport.Response
// @Router /wishlists [post]
func (s *RestHandler) CreateWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateWishlistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.WishlistApp.CreateWishlist(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetWishlist handler
// @Summary Get wishlist
// @Tags Wishlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wishlist ID"
// @Success 200 {object} model.Wishlist
// @Failure 404 {object} transport.Response
// @Router /wishlists/{id} [get]
func (s *RestHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.WishlistApp.GetWishlist(ctx, userID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateWishlist handler
// @Summary Update wishlist
// @Description Merge name/description/visibility; id and owner are immutable
// @Tags Wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wishlist ID"
// @Param request body model.UpdateWishlistRequest true "Fields"
// @Success 200 {object} model.Wishlist
// @Failure 404 {object} transport.Response
// @Router /wishlists/{id} [put]
func (s *RestHandler) UpdateWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdateWishlistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.WishlistApp.UpdateWishlist(ctx, userID, mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteWishlist handler
// @Summary Delete wishlist
// @Description Idempotent: deleting an absent wishlist succeeds
// @Tags Wishlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wishlist ID"
// @Success 200 {object} transport.Response
// @Router /wishlists/{id} [delete]
func (s *RestHandler) DeleteWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utilsContext.GetUserID(ctx)
	if err := s.WishlistApp.DeleteWishlist(ctx, userID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// AddItem handler
// @Summary Add item to wishlist
// @Description Append an item; a catalog item keeps its identity
// @Tags Wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wishlist ID"
// @Param request body model.ItemRequest true "Item"
// @Success 200 {object} model.Wishlist
// @Failure 404 {object} transport.Response
// @Router /wishlists/{id}/items [post]
func (s *RestHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.WishlistApp.AddItem(ctx, userID, mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReplaceItem handler
// @Summary Replace wishlist item
// @Description Edit an item in place as one atomic operation
// @Tags Wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wishlist ID"
// @Param itemId path string true "Item ID"
// @Param request body model.ItemRequest true "Item"
// @Success 200 {object} model.Wishlist
// @Failure 404 {object} transport.Response
// @Router /wishlists/{id}/items/{itemId} [put]
func (s *RestHandler) ReplaceItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	vars := mux.Vars(r)
	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.WishlistApp.ReplaceItem(ctx, userID, vars["id"], vars["itemId"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RemoveItem handler
// @Summary Remove item from wishlist
// @Tags Wishlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wishlist ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} model.Wishlist
// @Failure 404 {object} transport.Response
// @Router /wishlists/{id}/items/{itemId} [delete]
func (s *RestHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vars := mux.Vars(r)
	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.WishlistApp.RemoveItem(ctx, userID, vars["id"], vars["itemId"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListRecommendations handler
// @Summary Browse recommendations
// @Description Filter and sort the recommendation catalog
// @Tags Recommendation
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match on name or description"
// @Param categories query string false "Comma-separated category filter"
// @Param sortBy query string false "nameAsc|nameDesc|priceAsc|priceDesc" default(nameAsc)
// @Success 200 {object} model.RecommendationListResponse
// @Failure 400 {object} transport.Response
// @Router /recommendations [get]
func (s *RestHandler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseFilterState(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RecommendationApp.ListRecommendations(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListCategories handler
// @Summary List item categories
// @Tags Recommendation
// @Produce json
// @Success 200 {object} model.CategoryListResponse
// @Router /categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.RecommendationApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RecentActivity handler
// @Summary Recent wishlist activity
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ActivityListResponse
// @Router /activity [get]
func (s *RestHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.ActivityApp.Recent(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// IngestActivity handler, called by the activity worker.
// @Summary Ingest a wishlist activity event
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.ActivityEntry true "Activity"
// @Success 200 {object} transport.Response
// @Router /internal/v1/activity [post]
func (s *RestHandler) IngestActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var entry model.ActivityEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ActivityApp.Ingest(ctx, &entry); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// parseFilterState builds the FilterState from query parameters. The sort
// defaults to nameAsc, matching the default browse view.
func parseFilterState(r *http.Request) (*model.FilterState, error) {
	query := r.URL.Query()

	sortBy := constant.SortOption(query.Get("sortBy"))
	if sortBy == "" {
		sortBy = constant.SortNameAsc
	}
	if !constant.IsValidSortOption(sortBy) {
		return nil, errors.SetValidationError(validatorx.FieldErrors{
			"sortBy": "must be one of: nameAsc nameDesc priceAsc priceDesc",
		})
	}

	categories := []string{}
	for _, raw := range query["categories"] {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}

	return &model.FilterState{
		Search:     query.Get("search"),
		Categories: categories,
		SortBy:     sortBy,
	}, nil
}
