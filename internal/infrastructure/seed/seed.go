package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"settlement_console/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSeed []byte

var ErrInvalidSeed = errors.New("invalid seed data")

const (
	dateLayout   = "2006-01-02"
	periodLayout = "2006-01"
)

type document struct {
	Technicians []technicianDoc `yaml:"technicians"`
	Orders      []orderDoc      `yaml:"orders"`
	Settlements []settlementDoc `yaml:"settlements"`
	KPIs        []kpiDoc        `yaml:"kpis"`
	PartSales   []partSaleDoc   `yaml:"part_sales"`
}

type technicianDoc struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Phone  string `yaml:"phone"`
	Region string `yaml:"region"`
}

type orderDoc struct {
	ID           string `yaml:"id"`
	OrderNumber  string `yaml:"order_number"`
	CustomerName string `yaml:"customer_name"`
	Address      string `yaml:"address"`
	Type         string `yaml:"type"`
	Date         string `yaml:"date"`
	TechnicianID string `yaml:"technician_id"`
	Status       string `yaml:"status"`
}

type settlementDoc struct {
	ID             string `yaml:"id"`
	OrderID        string `yaml:"order_id"`
	Category       string `yaml:"category"`
	Amount         string `yaml:"amount"`
	Status         string `yaml:"status"`
	SubmissionDate string `yaml:"submission_date"`
}

type kpiDoc struct {
	ID                string  `yaml:"id"`
	TechnicianID      string  `yaml:"technician_id"`
	Period            string  `yaml:"period"`
	SatisfactionScore float64 `yaml:"satisfaction_score"`
	CompletionRate    float64 `yaml:"completion_rate"`
	TimelinessRate    float64 `yaml:"timeliness_rate"`
	ComplianceScore   float64 `yaml:"compliance_score"`
}

type partSaleDoc struct {
	ID           string `yaml:"id"`
	OrderID      string `yaml:"order_id"`
	PartType     string `yaml:"part_type"`
	Quantity     int64  `yaml:"quantity"`
	PricePerUnit string `yaml:"price_per_unit"`
	Date         string `yaml:"date"`
}

// Default returns the built-in demo data set.
func Default() (entities.Snapshot, error) {
	return Parse(defaultSeed)
}

// Load reads seed data from path, or the built-in set when path is empty.
func Load(path string) (entities.Snapshot, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Snapshot{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (entities.Snapshot, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return entities.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return doc.snapshot()
}

func (d document) snapshot() (entities.Snapshot, error) {
	var s entities.Snapshot
	techIDs := make(map[string]bool, len(d.Technicians))
	orderIDs := ids{}
	settlementIDs := ids{}
	kpiIDs := ids{}
	partIDs := ids{}
	kpiKeys := make(map[entities.KPIKey]bool, len(d.KPIs))

	for _, t := range d.Technicians {
		if t.ID == "" || t.Name == "" {
			return s, fmt.Errorf("%w: technician needs id and name", ErrInvalidSeed)
		}
		if techIDs[t.ID] {
			return s, fmt.Errorf("%w: duplicate technician %s", ErrInvalidSeed, t.ID)
		}
		techIDs[t.ID] = true
		s.Technicians = append(s.Technicians, entities.Technician{ID: t.ID, Name: t.Name, Phone: t.Phone, Region: t.Region})
	}

	for _, o := range d.Orders {
		if err := orderIDs.claim("order", o.ID); err != nil {
			return s, err
		}
		typ, ok := entities.ParseOrderType(o.Type)
		if !ok {
			return s, fmt.Errorf("%w: order %s has type %q", ErrInvalidSeed, o.ID, o.Type)
		}
		date, err := parseDate(o.Date)
		if err != nil {
			return s, fmt.Errorf("%w: order %s: %v", ErrInvalidSeed, o.ID, err)
		}
		if !techIDs[o.TechnicianID] {
			return s, fmt.Errorf("%w: order %s references unknown technician %s", ErrInvalidSeed, o.ID, o.TechnicianID)
		}
		switch entities.OrderStatus(o.Status) {
		case entities.OrderStatusPending, entities.OrderStatusCompleted, entities.OrderStatusCancelled:
		default:
			return s, fmt.Errorf("%w: order %s has status %q", ErrInvalidSeed, o.ID, o.Status)
		}
		s.Orders = append(s.Orders, entities.Order{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Address:      o.Address,
			Type:         typ,
			Date:         date,
			TechnicianID: o.TechnicianID,
			Status:       entities.OrderStatus(o.Status),
		})
	}

	for _, st := range d.Settlements {
		if err := settlementIDs.claim("settlement", st.ID); err != nil {
			return s, err
		}
		cat, ok := entities.ParseSettlementCategory(st.Category)
		if !ok {
			return s, fmt.Errorf("%w: settlement %s has category %q", ErrInvalidSeed, st.ID, st.Category)
		}
		status, ok := entities.ParseSettlementStatus(st.Status)
		if !ok {
			return s, fmt.Errorf("%w: settlement %s has status %q", ErrInvalidSeed, st.ID, st.Status)
		}
		amount, err := decimal.NewFromString(st.Amount)
		if err != nil {
			return s, fmt.Errorf("%w: settlement %s amount: %v", ErrInvalidSeed, st.ID, err)
		}
		date, err := parseDate(st.SubmissionDate)
		if err != nil {
			return s, fmt.Errorf("%w: settlement %s: %v", ErrInvalidSeed, st.ID, err)
		}
		s.Settlements = append(s.Settlements, entities.Settlement{
			ID:             st.ID,
			OrderID:        st.OrderID,
			Category:       cat,
			Amount:         amount,
			Status:         status,
			SubmissionDate: date,
		})
	}

	for _, k := range d.KPIs {
		if err := kpiIDs.claim("kpi", k.ID); err != nil {
			return s, err
		}
		if !techIDs[k.TechnicianID] {
			return s, fmt.Errorf("%w: kpi %s references unknown technician %s", ErrInvalidSeed, k.ID, k.TechnicianID)
		}
		if _, err := time.Parse(periodLayout, k.Period); err != nil {
			return s, fmt.Errorf("%w: kpi %s has period %q", ErrInvalidSeed, k.ID, k.Period)
		}
		key := entities.KPIKey{TechnicianID: k.TechnicianID, Period: k.Period}
		if kpiKeys[key] {
			return s, fmt.Errorf("%w: kpi %s repeats %s/%s", ErrInvalidSeed, k.ID, k.TechnicianID, k.Period)
		}
		kpiKeys[key] = true
		if !inRange(k.SatisfactionScore, 10) || !inRange(k.CompletionRate, 100) ||
			!inRange(k.TimelinessRate, 100) || !inRange(k.ComplianceScore, 100) {
			return s, fmt.Errorf("%w: kpi %s has a score out of range", ErrInvalidSeed, k.ID)
		}
		s.KPIs = append(s.KPIs, entities.KPIRecord{
			ID:                k.ID,
			TechnicianID:      k.TechnicianID,
			Period:            k.Period,
			SatisfactionScore: k.SatisfactionScore,
			CompletionRate:    k.CompletionRate,
			TimelinessRate:    k.TimelinessRate,
			ComplianceScore:   k.ComplianceScore,
		})
	}

	for _, p := range d.PartSales {
		if err := partIDs.claim("part sale", p.ID); err != nil {
			return s, err
		}
		pt, ok := entities.ParsePartType(p.PartType)
		if !ok {
			return s, fmt.Errorf("%w: part sale %s has type %q", ErrInvalidSeed, p.ID, p.PartType)
		}
		price, err := decimal.NewFromString(p.PricePerUnit)
		if err != nil {
			return s, fmt.Errorf("%w: part sale %s price: %v", ErrInvalidSeed, p.ID, err)
		}
		date, err := parseDate(p.Date)
		if err != nil {
			return s, fmt.Errorf("%w: part sale %s: %v", ErrInvalidSeed, p.ID, err)
		}
		s.PartSales = append(s.PartSales, entities.NewPartSale(p.ID, p.OrderID, pt, p.Quantity, price, date))
	}
	return s, nil
}

type ids map[string]bool

func (seen ids) claim(kind, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s needs an id", ErrInvalidSeed, kind)
	}
	if seen[id] {
		return fmt.Errorf("%w: duplicate %s %s", ErrInvalidSeed, kind, id)
	}
	seen[id] = true
	return nil
}

func inRange(v, upper float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= upper
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}
