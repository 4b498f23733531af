package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/isLah-15/CarDB-Render/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database (and its pragmas)
	// alive for the whole test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Car{},
		&models.Location{},
		&models.Reservation{},
		&models.Booking{},
		&models.Payment{},
		&models.Maintenance{},
		&models.Insurance{},
	))
	return db
}

func testCar() models.Car {
	return models.Car{
		CarModel:     "Camry",
		Manufacturer: "Toyota",
		Year:         2020,
		Color:        "Blue",
		RentalRate:   100,
		Availability: true,
	}
}

func TestStoreCreateThenGet(t *testing.T) {
	db := newTestDB(t)
	store := NewStore[models.Car](db, "Reservations", "Bookings", "Maintenance", "Insurance", "Location")

	car := testCar()
	require.NoError(t, store.Create(&car))
	require.NotZero(t, car.ID)

	got, err := store.Get(car.ID)
	require.NoError(t, err)
	assert.Equal(t, car.ID, got.ID)
	assert.Equal(t, "Camry", got.CarModel)
	assert.Equal(t, "Toyota", got.Manufacturer)
	assert.Equal(t, 100.0, got.RentalRate)
}

func TestStoreGetMissing(t *testing.T) {
	db := newTestDB(t)
	store := NewStore[models.Car](db)

	_, err := store.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreListEmptyIsTagged(t *testing.T) {
	db := newTestDB(t)
	store := NewStore[models.Car](db)

	recs, err := store.List()
	assert.ErrorIs(t, err, ErrNoRecords)
	assert.Nil(t, recs)
}

func TestStoreListPreloadsRelations(t *testing.T) {
	db := newTestDB(t)
	store := NewStore[models.Car](db, "Maintenance", "Location")

	car := testCar()
	require.NoError(t, store.Create(&car))
	require.NoError(t, db.Create(&models.Maintenance{
		CarID:           car.ID,
		MaintenanceDate: time.Now(),
		Description:     "Oil change",
		Cost:            45,
	}).Error)
	require.NoError(t, db.Create(&models.Location{
		CarID:         car.ID,
		LocationName:  "Downtown Branch",
		Address:       "12 Harbour Street",
		ContactNumber: "+14155550100",
	}).Error)

	recs, err := store.List()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Maintenance, 1)
	assert.Equal(t, "Oil change", recs[0].Maintenance[0].Description)
	require.NotNil(t, recs[0].Location)
	assert.Equal(t, "Downtown Branch", recs[0].Location.LocationName)
}

func TestStoreUpdatePinsID(t *testing.T) {
	db := newTestDB(t)
	store := NewStore[models.Car](db)

	car := testCar()
	require.NoError(t, store.Create(&car))

	replacement := testCar()
	replacement.Color = "Green"
	replacement.ID = 999 // must not move the write to another row

	require.NoError(t, store.Update(car.ID, &replacement))
	assert.Equal(t, car.ID, replacement.ID)

	got, err := store.Get(car.ID)
	require.NoError(t, err)
	assert.Equal(t, "Green", got.Color)

	var count int64
	db.Model(&models.Car{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestStoreDeleteThenGet(t *testing.T) {
	db := newTestDB(t)
	store := NewStore[models.Car](db)

	car := testCar()
	require.NoError(t, store.Create(&car))

	require.NoError(t, store.Delete(car.ID))

	_, err := store.Get(car.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(car.ID), ErrNotFound)
}

func TestStoreCreateIgnoresPayloadAssociations(t *testing.T) {
	db := newTestDB(t)
	store := NewStore[models.Car](db)

	car := testCar()
	car.Maintenance = []models.Maintenance{{
		MaintenanceDate: time.Now(),
		Description:     "should not be inserted",
		Cost:            10,
	}}
	require.NoError(t, store.Create(&car))

	var count int64
	db.Model(&models.Maintenance{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestDeleteCarCascades(t *testing.T) {
	db := newTestDB(t)

	customer := models.Customer{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane.doe@example.com",
		Phone:      "0712345678",
		Password:   "hash",
		Role:       "customer",
		Address:    "Mombasa",
		IsVerified: true,
	}
	require.NoError(t, db.Create(&customer).Error)

	car := testCar()
	require.NoError(t, db.Create(&car).Error)

	now := time.Now()
	require.NoError(t, db.Create(&models.Reservation{
		CustomerID:      customer.ID,
		CarID:           car.ID,
		ReservationDate: now,
		PickupDate:      now.Add(24 * time.Hour),
		ReturnDate:      now.Add(72 * time.Hour),
	}).Error)
	booking := models.Booking{
		CustomerID:      customer.ID,
		CarID:           car.ID,
		RentalStartDate: now,
		RentalEndDate:   now.Add(48 * time.Hour),
		TotalAmount:     200,
	}
	require.NoError(t, db.Create(&booking).Error)
	require.NoError(t, db.Create(&models.Payment{
		BookingID:     booking.ID,
		PaymentDate:   now,
		Amount:        200,
		PaymentMethod: "card",
	}).Error)
	require.NoError(t, db.Create(&models.Maintenance{
		CarID:           car.ID,
		MaintenanceDate: now,
		Description:     "Brake pads",
		Cost:            80,
	}).Error)
	require.NoError(t, db.Create(&models.Insurance{
		CarID:        car.ID,
		Provider:     "Acme Insurance",
		PolicyNumber: "POL-1001",
		StartDate:    now,
		EndDate:      now.AddDate(1, 0, 0),
	}).Error)
	require.NoError(t, db.Create(&models.Location{
		CarID:         car.ID,
		LocationName:  "Airport",
		Address:       "Terminal 1",
		ContactNumber: "+14155550102",
	}).Error)

	store := NewStore[models.Car](db)
	require.NoError(t, store.Delete(car.ID))

	for name, model := range map[string]interface{}{
		"reservations": &models.Reservation{},
		"bookings":     &models.Booking{},
		"payments":     &models.Payment{},
		"maintenance":  &models.Maintenance{},
		"insurance":    &models.Insurance{},
		"locations":    &models.Location{},
	} {
		var count int64
		db.Model(model).Count(&count)
		assert.EqualValues(t, 0, count, "expected %s to cascade", name)
	}

	// The customer is a parent, not a dependent, and must survive.
	var customers int64
	db.Model(&models.Customer{}).Count(&customers)
	assert.EqualValues(t, 1, customers)
}
