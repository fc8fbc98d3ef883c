package orderControllers

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

// openTestDB connects to the database named by TEST_DATABASE_URL, or skips.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	tag := fmt.Sprintf("%d", time.Now().UnixNano())
	user := models.User{
		Username: "checkout-" + tag,
		Email:    "checkout-" + tag + "@test.local",
		Password: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		db.Where("user_id = ?", user.ID).Delete(&models.CartItem{})
		db.Delete(&models.User{}, user.ID)
	})
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Stock: stock, Category: "Test"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	t.Cleanup(func() {
		db.Where("product_id = ?", product.ID).Delete(&models.CartItem{})
		db.Delete(&models.Product{}, product.ID)
	})
	return product
}

func testCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{
		ShippingAddress: "Av. Principal 123, Lima",
		BillingAddress:  "Av. Principal 123, Lima",
		BillingEmail:    "buyer@test.local",
		PaymentMethod:   "yape",
	}
}

func cleanupOrder(db *gorm.DB, orderID string) {
	db.Where("order_id = ?", orderID).Delete(&models.OrderItem{})
	db.Delete(&models.Order{}, "id = ?", orderID)
}

func TestPlaceOrderAtomicityAndTotals(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	productA := createTestProduct(t, db, "Atomicity Product A", 100.00, 5)
	productB := createTestProduct(t, db, "Atomicity Product B", 50.00, 5)

	lines := []models.CartItem{
		{UserID: user.ID, ProductID: productA.ID, Quantity: 2},
		{UserID: user.ID, ProductID: productB.ID, Quantity: 1, GiftWrap: true,
			CustomizationDetails: models.JSONMap{"engraving": "feliz cumpleaños"}},
	}
	if err := db.Create(&lines).Error; err != nil {
		t.Fatalf("create cart: %v", err)
	}

	order, err := PlaceOrder(db, user.ID, testCheckoutRequest())
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	t.Cleanup(func() { cleanupOrder(db, order.ID) })

	var persisted models.Order
	if err := db.Preload("Items").First(&persisted, "id = ?", order.ID).Error; err != nil {
		t.Fatalf("order not found after checkout: %v", err)
	}
	if len(persisted.Items) != 2 {
		t.Errorf("expected 2 order items, got %d", len(persisted.Items))
	}
	if persisted.Subtotal != 250.00 || persisted.GiftWrapTotal != 10.00 || persisted.Total != 260.00 {
		t.Errorf("unexpected totals: subtotal=%v giftWrap=%v total=%v",
			persisted.Subtotal, persisted.GiftWrapTotal, persisted.Total)
	}
	if persisted.Status != models.OrderStatusProcessing {
		t.Errorf("expected status Processing, got %s", persisted.Status)
	}

	var a, b models.Product
	db.First(&a, productA.ID)
	db.First(&b, productB.ID)
	if a.Stock != 3 {
		t.Errorf("expected product A stock 3, got %d", a.Stock)
	}
	if b.Stock != 4 {
		t.Errorf("expected product B stock 4, got %d", b.Stock)
	}

	// Cart must be cleared after a successful order
	var remaining int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&remaining)
	if remaining != 0 {
		t.Errorf("expected empty cart after checkout, found %d lines", remaining)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)

	if _, err := PlaceOrder(db, user.ID, testCheckoutRequest()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	var count int64
	db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Errorf("empty-cart checkout must not create orders, found %d", count)
	}
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	inStock := createTestProduct(t, db, "Rollback In Stock", 20.00, 10)
	scarce := createTestProduct(t, db, "Rollback Scarce", 30.00, 1)

	lines := []models.CartItem{
		{UserID: user.ID, ProductID: inStock.ID, Quantity: 2},
		{UserID: user.ID, ProductID: scarce.ID, Quantity: 5},
	}
	if err := db.Create(&lines).Error; err != nil {
		t.Fatalf("create cart: %v", err)
	}

	_, err := PlaceOrder(db, user.ID, testCheckoutRequest())
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.Product != "Rollback Scarce" || stockErr.Available != 1 {
		t.Errorf("unexpected stock error details: %+v", stockErr)
	}

	// Nothing may have been committed: no order, no decrement, cart intact
	var orders int64
	db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&orders)
	if orders != 0 {
		t.Errorf("failed checkout must not leave orders, found %d", orders)
	}
	var p models.Product
	db.First(&p, inStock.ID)
	if p.Stock != 10 {
		t.Errorf("expected in-stock product untouched at 10, got %d", p.Stock)
	}
	var cartLines int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartLines)
	if cartLines != 2 {
		t.Errorf("failed checkout must keep the cart, found %d lines", cartLines)
	}
}

func TestConcurrentCheckoutsNeverOversell(t *testing.T) {
	db := openTestDB(t)
	scarce := createTestProduct(t, db, "Oversell Product", 99.00, 1)

	userA := createTestUser(t, db)
	userB := createTestUser(t, db)
	for _, u := range []models.User{userA, userB} {
		line := models.CartItem{UserID: u.ID, ProductID: scarce.ID, Quantity: 1}
		if err := db.Create(&line).Error; err != nil {
			t.Fatalf("create cart: %v", err)
		}
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	orders := make([]*models.Order, 2)
	for i, u := range []models.User{userA, userB} {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			orders[i], results[i] = PlaceOrder(db, userID, testCheckoutRequest())
		}(i, u.ID)
	}
	wg.Wait()

	var succeeded, stockFailures int
	for i, err := range results {
		switch {
		case err == nil:
			succeeded++
			t.Cleanup(func() { cleanupOrder(db, orders[i].ID) })
		default:
			var stockErr *InsufficientStockError
			if errors.As(err, &stockErr) {
				stockFailures++
			} else {
				t.Errorf("unexpected error: %v", err)
			}
		}
	}
	if succeeded != 1 || stockFailures != 1 {
		t.Fatalf("expected exactly one success and one stock failure, got %d successes, %d stock failures",
			succeeded, stockFailures)
	}

	var p models.Product
	db.First(&p, scarce.ID)
	if p.Stock != 0 {
		t.Errorf("expected final stock 0, got %d", p.Stock)
	}
}

func TestClearCartIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)

	// Clearing an empty cart twice must succeed both times
	for i := 0; i < 2; i++ {
		if err := db.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
			t.Fatalf("clear %d failed: %v", i+1, err)
		}
	}
}
