package postgres

import (
	"context"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
// It is strictly read-only: the dispatch core never writes catalog tables.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// ListNewOrders loads orders awaiting dispatch together with their line items
// and, per item, every restaurant menu record for the ordered product. One
// query tree per batch, never per order.
func (repo *catalogRepository) ListNewOrders(ctx context.Context) ([]*entity.Order, error) {
	var rows []model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.OrderStatusNew)).
		Preload("Restaurant").
		Preload("Items.Product.MenuItems.Restaurant").
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list new orders")
	}

	orders := make([]*entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, toOrderDomain(&rows[i]))
	}

	return orders, nil
}

// ListRestaurants returns every restaurant ordered by name.
func (repo *catalogRepository) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	var rows []model.RestaurantModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(rows))
	for _, row := range rows {
		restaurants = append(restaurants, &entity.Restaurant{
			ID:           row.ID,
			Name:         row.Name,
			Address:      row.Address,
			ContactPhone: row.ContactPhone,
		})
	}

	return restaurants, nil
}

// ListProductMenus returns all products with their menu entries.
func (repo *catalogRepository) ListProductMenus(ctx context.Context) ([]*entity.ProductMenu, error) {
	var rows []model.ProductModel
	if err := repo.db.WithContext(ctx).
		Preload("MenuItems.Restaurant").
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list product menus")
	}

	menus := make([]*entity.ProductMenu, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		menus = append(menus, &entity.ProductMenu{
			Product: entity.Product{
				ID:    row.ID,
				Name:  row.Name,
				Price: row.Price,
			},
			MenuEntries: toMenuEntries(row.MenuItems),
		})
	}

	return menus, nil
}

func toOrderDomain(row *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:            row.ID,
		Status:        entity.OrderStatus(row.Status),
		PaymentMethod: entity.PaymentMethod(row.PaymentMethod),
		Address:       row.Address,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		PhoneNumber:   row.PhoneNumber,
		Comment:       row.Comment,
	}
	if row.Restaurant != nil {
		order.AssignedRestaurant = row.Restaurant.Name
	}

	order.Items = make([]entity.OrderItem, 0, len(row.Items))
	for i := range row.Items {
		item := &row.Items[i]
		order.Items = append(order.Items, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.ItemPrice,
			MenuEntries: toMenuEntries(item.Product.MenuItems),
		})
		order.TotalPrice += item.ItemPrice * float64(item.Quantity)
	}

	return order
}

func toMenuEntries(items []model.MenuItemModel) []entity.MenuEntry {
	entries := make([]entity.MenuEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, entity.MenuEntry{
			RestaurantName:    item.Restaurant.Name,
			RestaurantAddress: item.Restaurant.Address,
			Available:         item.Availability,
		})
	}

	return entries
}
