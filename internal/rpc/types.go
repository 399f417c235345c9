package rpc

// Full method names for the user service.
const (
	MethodRegisterUser = "/user.AuthService/RegisterUser"
	MethodLoginUser    = "/user.AuthService/LoginUser"
	MethodVerifyToken  = "/user.AuthService/VerifyToken"
)

// Full method names for the product service.
const (
	MethodGetAllProducts              = "/product.ProductService/GetAllProducts"
	MethodGetAllCategories            = "/product.ProductService/GetAllCategories"
	MethodSaveUserCategoryPreferences = "/product.ProductService/SaveUserCategoryPreferences"
	MethodGetProductsFromPreferences  = "/product.ProductService/GetAllProductsFromCategoriesUserPrefers"
)

// RegisterUserRequest is the wire request for user registration.
type RegisterUserRequest struct {
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RegisterUserResponse is the wire response for user registration.
type RegisterUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginUserRequest is the wire request for user login.
type LoginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUserResponse is the wire response for user login.
type LoginUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Email   string `json:"email"`
}

// VerifyTokenRequest is the wire request for token verification.
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// VerifyTokenResponse is the wire response for token verification.
type VerifyTokenResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Product is a single catalog item as it appears on the wire.
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageURL"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
}

// Category is a single product category as it appears on the wire.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetAllProductsRequest is the wire request for the full product list.
type GetAllProductsRequest struct{}

// GetAllProductsResponse is the wire response carrying the product list.
type GetAllProductsResponse struct {
	ProductItems []Product `json:"productItems"`
}

// GetAllCategoriesRequest is the wire request for the category list.
type GetAllCategoriesRequest struct{}

// GetAllCategoriesResponse is the wire response carrying the category list.
type GetAllCategoriesResponse struct {
	CategoryItems []Category `json:"categoryItems"`
}

// SaveUserCategoryPreferencesRequest is the wire request for saving a
// user's category preferences. Wire fields are snake_cased.
type SaveUserCategoryPreferencesRequest struct {
	UserID      string   `json:"user_id"`
	CategoryIDs []string `json:"category_ids"`
}

// SaveUserCategoryPreferencesResponse is the wire response for saving
// category preferences.
type SaveUserCategoryPreferencesResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GetProductsFromPreferencesRequest is the wire request for products
// matching a user's saved category preferences.
type GetProductsFromPreferencesRequest struct {
	UserID string `json:"user_id"`
}

// GetProductsFromPreferencesResponse is the wire response carrying products
// matching the user's preferences.
type GetProductsFromPreferencesResponse struct {
	ProductItems []Product `json:"productItems"`
}
