package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"settlement_console/internal/domain/entities"
	"settlement_console/internal/infrastructure/idgen"
	"settlement_console/internal/usecase/ingest"
	mock_interfaces "settlement_console/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestImportUseCase(t *testing.T, decoder *mock_interfaces.MockISheetDecoder) (*ImportUseCase, *mock_interfaces.MockIIngestMetrics) {
	t.Helper()
	ctrl := gomock.NewController(t)
	metrics := mock_interfaces.NewMockIIngestMetrics(ctrl)
	metrics.EXPECT().ObserveRows(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	policy := ImportPolicy{Dates: ingest.FirstDayPicker{}, Assigner: ingest.FixedAssigner{TechnicianID: "T001"}}
	return NewImportUseCase(newTestStore(), idgen.NewSequence(), decoder, policy, metrics, nil), metrics
}

func TestImportUseCase_ImportText(t *testing.T) {
	ctx := context.Background()

	t.Run("empty payload", func(t *testing.T) {
		uc, metrics := newTestImportUseCase(t, nil)
		metrics.EXPECT().ObserveBatch("order", "empty")
		_, err := uc.ImportText(ctx, ImportRequest{Kind: "order", Month: "2023-10", Category: "Repair"}, " \n\t\n")
		assert.True(t, errors.Is(err, ErrEmptyPayload))
	})

	t.Run("delimiters only", func(t *testing.T) {
		uc, metrics := newTestImportUseCase(t, nil)
		metrics.EXPECT().ObserveBatch("order", "empty")
		_, err := uc.ImportText(ctx, ImportRequest{Kind: "order", Month: "2023-10", Category: "Repair"}, ",,,\n\t\n，，")
		assert.True(t, errors.Is(err, ErrEmptyPayload))
	})

	t.Run("bad month", func(t *testing.T) {
		uc, metrics := newTestImportUseCase(t, nil)
		metrics.EXPECT().ObserveBatch("order", "rejected")
		_, err := uc.ImportText(ctx, ImportRequest{Kind: "order", Month: "10/2023", Category: "Repair"}, "JD1,a")
		assert.True(t, errors.Is(err, ErrInvalidBatchContext))
	})

	t.Run("unknown kind", func(t *testing.T) {
		uc, metrics := newTestImportUseCase(t, nil)
		metrics.EXPECT().ObserveBatch("invoice", "rejected")
		_, err := uc.ImportText(ctx, ImportRequest{Kind: "invoice", Month: "2023-10"}, "JD1,a")
		assert.True(t, errors.Is(err, ErrInvalidBatchContext))
	})

	t.Run("orders", func(t *testing.T) {
		uc, metrics := newTestImportUseCase(t, nil)
		metrics.EXPECT().ObserveBatch("order", "ok")
		r, err := uc.ImportText(ctx, ImportRequest{Kind: "orders", Month: "2023-10", Category: "安装"}, "订单号,客户,地址\nJD001,张三,北京\nJD002,李四")
		require.NoError(t, err)
		assert.Equal(t, 2, r.Imported)
		assert.Equal(t, 1, r.SkippedHeader)
		assert.Equal(t, 0, r.ErrorCount())

		orders := uc.store.Orders()
		require.Len(t, orders, 6)
		assert.Equal(t, ingest.UnknownAddress, orders[0].Address)
		assert.Equal(t, entities.OrderTypeInstallation, orders[0].Type)
		assert.Equal(t, "T001", orders[0].TechnicianID)
	})

	t.Run("kpi with unknown technician", func(t *testing.T) {
		uc, metrics := newTestImportUseCase(t, nil)
		metrics.EXPECT().ObserveBatch("kpi", "ok")
		r, err := uc.ImportText(ctx, ImportRequest{Kind: "kpi", Month: "2023-11", Metric: "ALL"}, "张伟,9.5,98,95,100\n未知师傅,9,90,90,90")
		require.NoError(t, err)
		assert.Equal(t, 1, r.Imported)
		assert.Equal(t, 1, r.ErrorCount())
	})
}

func TestImportUseCase_ImportGrid(t *testing.T) {
	uc, metrics := newTestImportUseCase(t, nil)
	metrics.EXPECT().ObserveBatch("part", "ok")

	grid := [][]any{
		{"关联订单ID", "数量", "单价"},
		{"JD002", 2, 150},
		{nil, nil, nil},
	}
	r, err := uc.ImportGrid(context.Background(), ImportRequest{Kind: "part", Month: "2023-10", Category: "OriginalBattery"}, grid)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Total)
	assert.Equal(t, 1, r.Imported)
	assert.True(t, d("300").Equal(uc.store.PartSales()[0].Total))

	metrics.EXPECT().ObserveBatch("part", "empty")
	_, err = uc.ImportGrid(context.Background(), ImportRequest{Kind: "part", Month: "2023-10", Category: "OriginalBattery"}, [][]any{{nil, ""}})
	assert.True(t, errors.Is(err, ErrEmptyPayload))
}

func TestImportUseCase_ImportFile(t *testing.T) {
	ctx := context.Background()
	req := ImportRequest{Kind: "settlement", Month: "2023-10", Category: "3C"}

	t.Run("decode failure imports nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decoder := mock_interfaces.NewMockISheetDecoder(ctrl)
		uc, metrics := newTestImportUseCase(t, decoder)
		before := len(uc.store.Settlements())

		decoder.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(nil, errors.New("zip: not a valid zip file"))
		metrics.EXPECT().ObserveBatch("settlement", "decode_failed")

		_, err := uc.ImportFile(ctx, req, strings.NewReader("garbage"))
		assert.True(t, errors.Is(err, ErrDecodeFailed))
		assert.Len(t, uc.store.Settlements(), before)
	})

	t.Run("decoded rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decoder := mock_interfaces.NewMockISheetDecoder(ctrl)
		uc, metrics := newTestImportUseCase(t, decoder)

		decoder.EXPECT().Decode(gomock.Any(), gomock.Any()).Return([][]string{
			{"Order ID", "Amount"},
			{"O1002", "¥45"},
			{"O1003", "-3"},
		}, nil)
		metrics.EXPECT().ObserveBatch("settlement", "ok")

		r, err := uc.ImportFile(ctx, req, strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, 1, r.Imported)
		assert.Equal(t, 1, r.SkippedHeader)
		assert.Equal(t, 1, r.SkippedInvalid)
		assert.Equal(t, entities.SettlementCategory3C, uc.store.Settlements()[0].Category)
	})

	t.Run("context checked before decode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decoder := mock_interfaces.NewMockISheetDecoder(ctrl)
		uc, metrics := newTestImportUseCase(t, decoder)
		metrics.EXPECT().ObserveBatch("settlement", "rejected")

		_, err := uc.ImportFile(ctx, ImportRequest{Kind: "settlement", Month: "2023-10", Category: "Phones"}, strings.NewReader("x"))
		assert.True(t, errors.Is(err, ErrInvalidBatchContext))
	})

	t.Run("no decoder", func(t *testing.T) {
		uc, _ := newTestImportUseCase(t, nil)
		uc.decoder = nil
		_, err := uc.ImportFile(ctx, req, strings.NewReader("x"))
		assert.True(t, errors.Is(err, ErrDecodeFailed))
	})
}
