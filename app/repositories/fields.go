package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/Rakhulsr/ecommerce-back-end/app/helpers"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return newValidationError(helpers.FormatValidationErrors(verrs))
	}
	return err
}

// validateVar checks a single supplied field on the update path.
func validateVar(field string, value interface{}, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldError(field, helpers.ValidationMessage(field, verrs[0].Tag(), verrs[0].Param()))
	}
	return err
}

// presence records which keys a request body carried, so that an absent
// field and an explicit null can be told apart.
type presence map[string]bool

// decodeFields decodes a JSON object into dst. Keys listed in numeric must hold
// a number, a numeric string or null.
func decodeFields(data []byte, dst interface{}, numeric ...string) (presence, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Message: "request body must be a JSON object"}
	}
	for _, field := range numeric {
		value, ok := raw[field]
		if !ok {
			continue
		}
		var n *json.Number
		if err := json.Unmarshal(value, &n); err != nil {
			return nil, fieldError(field, helpers.ValidationMessage(field, "numeric", ""))
		}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, fieldError(typeErr.Field, fmt.Sprintf("%s must not be a JSON %s", typeErr.Field, typeErr.Value))
		}
		return nil, &ValidationError{Message: err.Error()}
	}
	present := make(presence, len(raw))
	for k := range raw {
		present[k] = true
	}
	return present, nil
}

func notNull(field string) error {
	return fieldError(field, field+" cannot be null")
}

type CategoryFields struct {
	CategoryName *string `json:"category_name" validate:"required"`

	present presence
}

func (f *CategoryFields) UnmarshalJSON(data []byte) error {
	type plain CategoryFields
	present, err := decodeFields(data, (*plain)(f))
	if err != nil {
		return err
	}
	f.present = present
	return nil
}

func (f CategoryFields) updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if f.present["category_name"] {
		if f.CategoryName == nil {
			return nil, notNull("category_name")
		}
		updates["category_name"] = *f.CategoryName
	}
	return updates, nil
}

// ProductFields carries numeric values as json.Number so that quoted numbers
// ("12.50") are accepted the same way bare ones are.
type ProductFields struct {
	ProductName *string      `json:"product_name" validate:"required"`
	Price       *json.Number `json:"price" validate:"required,numeric"`
	Stock       *json.Number `json:"stock" validate:"omitempty,numeric"`
	CategoryID  *json.Number `json:"category_id" validate:"omitempty,number"`

	present presence
}

func (f *ProductFields) UnmarshalJSON(data []byte) error {
	type plain ProductFields
	present, err := decodeFields(data, (*plain)(f), "price", "stock", "category_id")
	if err != nil {
		return err
	}
	f.present = present
	return nil
}

func parsePrice(n json.Number) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fieldError("price", "price must be a decimal number")
	}
	return price.Round(2), nil
}

func parseStock(n json.Number) (int, error) {
	stock, err := strconv.Atoi(n.String())
	if err != nil {
		return 0, fieldError("stock", "stock must be an integer")
	}
	return stock, nil
}

func parseCategoryID(n *json.Number) (*uint, error) {
	if n == nil {
		return nil, nil
	}
	id, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return nil, fieldError("category_id", "category_id must be a non-negative integer")
	}
	key := uint(id)
	return &key, nil
}

func (f ProductFields) updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if f.present["product_name"] {
		if f.ProductName == nil {
			return nil, notNull("product_name")
		}
		updates["product_name"] = *f.ProductName
	}

	if f.present["price"] {
		if f.Price == nil {
			return nil, notNull("price")
		}
		if err := validateVar("price", f.Price.String(), "numeric"); err != nil {
			return nil, err
		}
		price, err := parsePrice(*f.Price)
		if err != nil {
			return nil, err
		}
		updates["price"] = price
	}

	if f.present["stock"] {
		if f.Stock == nil {
			return nil, notNull("stock")
		}
		if err := validateVar("stock", f.Stock.String(), "numeric"); err != nil {
			return nil, err
		}
		stock, err := parseStock(*f.Stock)
		if err != nil {
			return nil, err
		}
		updates["stock"] = stock
	}

	if f.present["category_id"] {
		categoryID, err := parseCategoryID(f.CategoryID)
		if err != nil {
			return nil, err
		}
		if categoryID == nil {
			updates["category_id"] = nil
		} else {
			updates["category_id"] = *categoryID
		}
	}

	return updates, nil
}

type TagFields struct {
	TagName *string `json:"tag_name"`

	present presence
}

func (f *TagFields) UnmarshalJSON(data []byte) error {
	type plain TagFields
	present, err := decodeFields(data, (*plain)(f))
	if err != nil {
		return err
	}
	f.present = present
	return nil
}

func (f TagFields) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if f.present["tag_name"] {
		if f.TagName == nil {
			updates["tag_name"] = nil
		} else {
			updates["tag_name"] = *f.TagName
		}
	}
	return updates
}
