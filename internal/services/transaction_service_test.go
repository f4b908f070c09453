package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finagent/internal/testutil"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreateTransaction(t *testing.T) {
	t.Run("buy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, NewAssetService(db))
		asset := testutil.CreateTestAssetWithTicker(t, db, "WEGE3")

		date := time.Date(2024, 3, 5, 15, 30, 0, 0, time.UTC)
		tx, err := txSvc.CreateTransaction("wege3", TransactionInput{Quantity: dec("100"), Price: dec("35.20"), Date: date})
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected non-empty transaction ID")
		}
		if tx.AssetID != asset.ID {
			t.Errorf("expected asset %s, got %s", asset.ID, tx.AssetID)
		}
		if !tx.TransactionDate.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected date truncated to day, got %s", tx.TransactionDate)
		}
	})

	t.Run("sell_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, NewAssetService(db))
		testutil.CreateTestAssetWithTicker(t, db, "WEGE3")

		tx, err := txSvc.CreateTransaction("WEGE3", TransactionInput{Quantity: dec("-5"), Price: dec("40"), Date: testutil.Date(t, "2024-04-01")})
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "quantity", tx.Quantity, "-5")
	})

	t.Run("negative_price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, NewAssetService(db))
		testutil.CreateTestAssetWithTicker(t, db, "WEGE3")

		_, err := txSvc.CreateTransaction("WEGE3", TransactionInput{Quantity: dec("1"), Price: dec("-1"), Date: testutil.Date(t, "2024-04-01")})
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})

	t.Run("missing_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, NewAssetService(db))
		testutil.CreateTestAssetWithTicker(t, db, "WEGE3")

		_, err := txSvc.CreateTransaction("WEGE3", TransactionInput{Quantity: dec("1"), Price: dec("1")})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, NewAssetService(db))

		_, err := txSvc.CreateTransaction("NOPE", TransactionInput{Quantity: dec("1"), Price: dec("1"), Date: testutil.Date(t, "2024-04-01")})
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestListTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	txSvc := NewTransactionService(db, NewAssetService(db))
	asset := testutil.CreateTestAssetWithTicker(t, db, "ABC")
	other := testutil.CreateTestAssetWithTicker(t, db, "XYZ")

	testutil.CreateTestTransaction(t, db, asset.ID, "3", "10", "2024-03-01")
	testutil.CreateTestTransaction(t, db, asset.ID, "1", "10", "2024-01-01")
	testutil.CreateTestTransaction(t, db, asset.ID, "2", "10", "2024-02-01")
	testutil.CreateTestTransaction(t, db, other.ID, "9", "10", "2024-01-01")

	all, err := txSvc.ListTransactions("abc", 0, 0)
	testutil.AssertNoError(t, err)
	if len(all) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(all))
	}
	for i, want := range []string{"1", "2", "3"} {
		if !all[i].Quantity.Equal(dec(want)) {
			t.Errorf("position %d: expected quantity %s, got %s", i, want, all[i].Quantity)
		}
	}

	window, err := txSvc.ListTransactions("ABC", 1, 1)
	testutil.AssertNoError(t, err)
	if len(window) != 1 || !window[0].Quantity.Equal(dec("2")) {
		t.Errorf("unexpected window: %+v", window)
	}

	_, err = txSvc.ListTransactions("NOPE", 0, 10)
	testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("price_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, NewAssetService(db))
		asset := testutil.CreateTestAsset(t, db)
		tx := testutil.CreateTestTransaction(t, db, asset.ID, "10", "5", "2024-01-01")

		price := dec("6.25")
		updated, err := txSvc.UpdateTransaction(tx.ID, TransactionUpdate{Price: &price})
		testutil.AssertNoError(t, err)
		if !updated.Price.Equal(price) {
			t.Errorf("expected price 6.25, got %s", updated.Price)
		}
		if !updated.Quantity.Equal(dec("10")) {
			t.Errorf("quantity should be unchanged, got %s", updated.Quantity)
		}
	})

	t.Run("nothing_to_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, NewAssetService(db))
		asset := testutil.CreateTestAsset(t, db)
		tx := testutil.CreateTestTransaction(t, db, asset.ID, "10", "5", "2024-01-01")

		_, err := txSvc.UpdateTransaction(tx.ID, TransactionUpdate{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, NewAssetService(db))
		asset := testutil.CreateTestAsset(t, db)
		tx := testutil.CreateTestTransaction(t, db, asset.ID, "10", "5", "2024-01-01")

		price := dec("-0.01")
		_, err := txSvc.UpdateTransaction(tx.ID, TransactionUpdate{Price: &price})
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, NewAssetService(db))

		price := dec("1")
		_, err := txSvc.UpdateTransaction("0190a8e2-0000-7000-8000-000000000000", TransactionUpdate{Price: &price})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	txSvc := NewTransactionService(db, NewAssetService(db))
	asset := testutil.CreateTestAsset(t, db)
	tx := testutil.CreateTestTransaction(t, db, asset.ID, "10", "5", "2024-01-01")

	testutil.AssertNoError(t, txSvc.DeleteTransaction(tx.ID))

	_, err := txSvc.GetTransaction(tx.ID)
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

	ledger, err := txSvc.LedgerForAsset(asset.ID)
	testutil.AssertNoError(t, err)
	if len(ledger) != 0 {
		t.Errorf("expected empty ledger, got %d entries", len(ledger))
	}

	err = txSvc.DeleteTransaction(tx.ID)
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
}
