package response

import (
	"encoding/json"
	"testing"
	"time"

	"settlement_console/internal/domain/entities"
	"settlement_console/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromOrder(t *testing.T) {
	o := entities.Order{
		ID:           "O1",
		OrderNumber:  "JD1",
		CustomerName: "刘先生",
		Address:      "北京",
		Type:         entities.OrderTypeRepair,
		Date:         time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC),
		TechnicianID: "T001",
		Status:       entities.OrderStatusPending,
	}

	res := FromOrder(o)
	if res.Date != "2023-10-27" {
		t.Fatalf("unexpected date: %q", res.Date)
	}
	if res.Type != "Repair" || res.Status != "Pending" || res.TechnicianID != "T001" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromSettlementListing_EmptyEncodesAsArrays(t *testing.T) {
	body, err := json.Marshal(FromSettlementListing(usecase.SettlementListing{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"pending":[],"history":[]}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestFromPartSale(t *testing.T) {
	ps := entities.NewPartSale("P1", "O1", entities.PartTypeOriginalBattery, 2, decimal.NewFromInt(150), time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC))

	res := FromPartSale(ps)
	if !res.Total.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected total 300, got %s", res.Total)
	}
	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw["total"] != "300" || raw["date"] != "2023-10-01" {
		t.Fatalf("unexpected json: %s", body)
	}
}

func TestFromKPIs(t *testing.T) {
	res := FromKPIs([]entities.KPIRecord{{ID: "K1", TechnicianID: "T001", Period: "2023-10", SatisfactionScore: 9.5}})
	if len(res) != 1 || res[0].SatisfactionScore != 9.5 || res[0].Period != "2023-10" {
		t.Fatalf("unexpected kpis: %+v", res)
	}
	if got := FromTechnicians(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
