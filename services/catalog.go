package services

import (
	"strings"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

type ProductFilter struct {
	Search     string
	CategoryID uint
	Page       int
	Limit      int
}

type ProductPage struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

func CreateCustomer(db *gorm.DB, customer *models.Customer) error {
	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	taken, err := exists(db.Unscoped(), &models.Customer{}, "email = ?", customer.Email)
	if err != nil {
		return err
	}
	if taken {
		return duplicate("customer", "email", customer.Email)
	}
	return db.Create(customer).Error
}

func GetCustomer(db *gorm.DB, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := findByID(db, &customer, "customer", id); err != nil {
		return nil, err
	}
	return &customer, nil
}

func ListCustomers(db *gorm.DB) ([]models.Customer, error) {
	var customers []models.Customer
	err := db.Order("id").Find(&customers).Error
	return customers, err
}

func UpdateCustomer(db *gorm.DB, id uint, input models.Customer) (*models.Customer, error) {
	customer, err := GetCustomer(db, id)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != customer.Email {
		taken, err := exists(db.Unscoped(), &models.Customer{}, "email = ? AND id <> ?", email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, duplicate("customer", "email", email)
		}
	}
	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.Email = email
	customer.Phone = input.Phone
	customer.Address = input.Address
	if err := db.Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func DeleteCustomer(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("customer", id)
	}
	return nil
}

func CreateCategory(db *gorm.DB, category *models.ProductCategory) error {
	category.Name = strings.TrimSpace(category.Name)
	taken, err := exists(db.Unscoped(), &models.ProductCategory{}, "name = ?", category.Name)
	if err != nil {
		return err
	}
	if taken {
		return duplicate("category", "name", category.Name)
	}
	return db.Create(category).Error
}

func UpdateCategory(db *gorm.DB, id uint, input models.ProductCategory) (*models.ProductCategory, error) {
	var category models.ProductCategory
	if err := findByID(db, &category, "category", id); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	taken, err := exists(db.Unscoped(), &models.ProductCategory{}, "name = ? AND id <> ?", name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, duplicate("category", "name", name)
	}
	category.Name = name
	category.Description = input.Description
	if err := db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func GetCategory(db *gorm.DB, id uint) (*models.ProductCategory, error) {
	var category models.ProductCategory
	if err := findByID(db, &category, "category", id); err != nil {
		return nil, err
	}
	return &category, nil
}

func ListCategories(db *gorm.DB) ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	err := db.Order("name").Find(&categories).Error
	return categories, err
}

func DeleteCategory(db *gorm.DB, id uint) error {
	result := db.Delete(&models.ProductCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("category", id)
	}
	return nil
}

func CreateSupplier(db *gorm.DB, supplier *models.Supplier) error {
	supplier.Name = strings.TrimSpace(supplier.Name)
	taken, err := exists(db.Unscoped(), &models.Supplier{}, "name = ?", supplier.Name)
	if err != nil {
		return err
	}
	if taken {
		return duplicate("supplier", "name", supplier.Name)
	}
	return db.Create(supplier).Error
}

func GetSupplier(db *gorm.DB, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := findByID(db, &supplier, "supplier", id); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func ListSuppliers(db *gorm.DB) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := db.Order("name").Find(&suppliers).Error
	return suppliers, err
}

func DeleteSupplier(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Supplier{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("supplier", id)
	}
	return nil
}

func validateProduct(db *gorm.DB, product *models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return invalid("product name is required")
	}
	if !product.Price.IsPositive() {
		return invalid("price %s must be greater than zero", product.Price)
	}
	if product.CategoryID != nil {
		if err := findByID(db, &models.ProductCategory{}, "category", *product.CategoryID); err != nil {
			return err
		}
	}
	if product.SupplierID != nil {
		if err := findByID(db, &models.Supplier{}, "supplier", *product.SupplierID); err != nil {
			return err
		}
	}
	return nil
}

func CreateProduct(db *gorm.DB, product *models.Product) error {
	if err := validateProduct(db, product); err != nil {
		return err
	}
	return db.Create(product).Error
}

func UpdateProduct(db *gorm.DB, id uint, input models.Product) (*models.Product, error) {
	var product models.Product
	if err := findByID(db, &product, "product", id); err != nil {
		return nil, err
	}
	if err := validateProduct(db, &input); err != nil {
		return nil, err
	}
	err := db.Model(&product).Select("Brand", "Name", "Description", "Price", "CategoryID", "SupplierID", "Colors").
		Updates(models.Product{
			Brand:       input.Brand,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			CategoryID:  input.CategoryID,
			SupplierID:  input.SupplierID,
			Colors:      input.Colors,
		}).Error
	if err != nil {
		return nil, err
	}
	return GetProduct(db, id)
}

func GetProduct(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := findByID(db.Preload("Specifications").Preload("Images"), &product, "product", id); err != nil {
		return nil, err
	}
	return &product, nil
}

func ListProducts(db *gorm.DB, filter ProductFilter) (*ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 12
	}
	scoped := func() *gorm.DB {
		query := db.Model(&models.Product{})
		if filter.Search != "" {
			query = query.Where("name LIKE ?", "%"+filter.Search+"%")
		}
		if filter.CategoryID != 0 {
			query = query.Where("category_id = ?", filter.CategoryID)
		}
		return query
	}

	var count int64
	if err := scoped().Count(&count).Error; err != nil {
		return nil, err
	}
	var products []models.Product
	if err := scoped().Preload("Images").
		Order("id").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return &ProductPage{Products: products, Total: count, Page: filter.Page, Limit: filter.Limit}, nil
}

func DeleteProduct(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("product", id)
	}
	return nil
}

func AddProductSpecs(db *gorm.DB, spec *models.ProductSpecs) error {
	if err := findByID(db, &models.Product{}, "product", spec.ProductID); err != nil {
		return err
	}
	return db.Create(spec).Error
}

func AddProductImage(db *gorm.DB, productID uint, url string) (*models.ProductImage, error) {
	image := models.ProductImage{Url: url, ProductID: productID}
	if err := db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}
