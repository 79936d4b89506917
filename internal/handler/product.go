package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProductHandler handles catalog routes. Reads are public; writes are
// mounted behind the admin middleware.
type ProductHandler struct {
	products service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /products.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.products.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products (multipart form with optional image).
func (h *ProductHandler) Create(c echo.Context) error {
	params := domain.CreateProductParams{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Allergens:   c.FormValue("allergens"),
		Ingredients: c.FormValue("ingredients"),
		Vegan:       formBool(c, "vegan"),
		GlutenFree:  formBool(c, "glutenFree"),
		IsActive:    formBool(c, "isActive"),
	}

	price, err := formInt(c, "priceCents")
	if err != nil {
		return err
	}
	if price != nil {
		params.PriceCents = *price
	}
	stock, err := formInt(c, "stockQuantity")
	if err != nil {
		return err
	}
	if stock != nil {
		params.StockQuantity = *stock
	}

	image, err := formImage(c)
	if err != nil {
		return err
	}
	if image != nil {
		defer image.close()
	}

	product, err := h.products.CreateProduct(c.Request().Context(), params, image.upload())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"msg":     "Product added successfully",
		"product": product,
	})
}

// Update handles PUT /products/:id (multipart form; absent fields keep
// their stored values).
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	params := domain.UpdateProductParams{
		Name:        formString(c, "name"),
		Description: formString(c, "description"),
		Allergens:   formString(c, "allergens"),
		Ingredients: formString(c, "ingredients"),
	}
	if v := formString(c, "vegan"); v != nil {
		b := *v == "true"
		params.Vegan = &b
	}
	if v := formString(c, "glutenFree"); v != nil {
		b := *v == "true"
		params.GlutenFree = &b
	}
	if v := formString(c, "isActive"); v != nil {
		b := *v == "true"
		params.IsActive = &b
	}
	if params.PriceCents, err = formInt(c, "priceCents"); err != nil {
		return err
	}
	if params.StockQuantity, err = formInt(c, "stockQuantity"); err != nil {
		return err
	}

	image, err := formImage(c)
	if err != nil {
		return err
	}
	if image != nil {
		defer image.close()
	}

	product, err := h.products.UpdateProduct(c.Request().Context(), id, params, image.upload())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":     "Product updated successfully",
		"product": product,
	})
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.products.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "Product successfully deleted"})
}

// ToggleActive handles PATCH /products/:id.
func (h *ProductHandler) ToggleActive(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.products.ToggleActive(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":     "Product's status successfully updated",
		"product": product,
	})
}

// parseID reads a UUID path parameter.
func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domain.Invalid("request.parse_id", "invalid id")
	}
	return id, nil
}

// formString returns the form value if the field was submitted, nil
// otherwise. Both url-encoded and multipart bodies are checked.
func formString(c echo.Context, key string) *string {
	if err := c.Request().ParseForm(); err == nil {
		if vs, ok := c.Request().Form[key]; ok && len(vs) > 0 {
			return &vs[0]
		}
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			return &vs[0]
		}
	}
	return nil
}

func formBool(c echo.Context, key string) bool {
	return c.FormValue(key) == "true"
}

func formInt(c echo.Context, key string) (*int32, error) {
	v := formString(c, key)
	if v == nil {
		return nil, nil
	}
	n, err := strconv.ParseInt(*v, 10, 32)
	if err != nil {
		return nil, domain.Errorf(domain.EINVALID, "request.parse_form", "invalid %s", key)
	}
	n32 := int32(n)
	return &n32, nil
}

// formFile wraps an uploaded image so the multipart stream can be closed
// after the service consumed it.
type formFile struct {
	header *multipart.FileHeader
	file   multipart.File
}

func (f *formFile) upload() *service.ImageUpload {
	if f == nil {
		return nil
	}
	return &service.ImageUpload{
		Filename:    f.header.Filename,
		ContentType: f.header.Header.Get("Content-Type"),
		Content:     f.file,
	}
}

func (f *formFile) close() {
	if f != nil && f.file != nil {
		f.file.Close()
	}
}

func formImage(c echo.Context) (*formFile, error) {
	header, err := c.FormFile("image")
	if err != nil {
		// Missing file is fine; the image is optional.
		return nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, domain.Internal(err, "request.form_image", "failed to read uploaded image")
	}
	return &formFile{header: header, file: file}, nil
}
