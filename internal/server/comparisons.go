package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	procurementpb "github.com/harshmriduhash/iq-procure-assist/gen/proto/procurement/v1"
	"github.com/harshmriduhash/iq-procure-assist/internal/async"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/export"
	"github.com/harshmriduhash/iq-procure-assist/internal/lifecycle"
	"github.com/harshmriduhash/iq-procure-assist/internal/memo"
	"github.com/harshmriduhash/iq-procure-assist/internal/notify"
	"github.com/harshmriduhash/iq-procure-assist/internal/repository"
	"github.com/harshmriduhash/iq-procure-assist/internal/utils"
)

type ComparisonsService struct {
	procurementpb.UnimplementedComparisonsServiceServer
	repo      repository.ComparisonRepository
	ctrl      *lifecycle.Controller
	queue     *async.Queue
	memoSvc   *memo.Service
	exportSvc *export.Service
	hub       *notify.Hub
	logger    *slog.Logger
}

func NewComparisonsService(
	repo repository.ComparisonRepository,
	ctrl *lifecycle.Controller,
	queue *async.Queue,
	memoSvc *memo.Service,
	exportSvc *export.Service,
	hub *notify.Hub,
	logger *slog.Logger,
) *ComparisonsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ComparisonsService{
		repo:      repo,
		ctrl:      ctrl,
		queue:     queue,
		memoSvc:   memoSvc,
		exportSvc: exportSvc,
		hub:       hub,
		logger:    logger,
	}
}

func (s *ComparisonsService) CreateComparison(ctx context.Context, req *procurementpb.CreateComparisonRequest) (*procurementpb.CreateComparisonResponse, error) {
	title := strings.TrimSpace(req.GetTitle())
	if title == "" {
		s.logger.Error("create comparison request missing title")
		return nil, status.Error(codes.InvalidArgument, "title is required")
	}
	if len(req.GetFiles()) == 0 {
		s.logger.Error("create comparison request missing files", "title", title)
		return nil, status.Error(codes.InvalidArgument, "at least one file is required")
	}

	files := make([]entity.QuoteFile, 0, len(req.GetFiles()))
	for _, f := range req.GetFiles() {
		if strings.TrimSpace(f.GetFilename()) == "" || strings.TrimSpace(f.GetStoragePath()) == "" {
			return nil, status.Error(codes.InvalidArgument, "each file needs a filename and storage_path")
		}
		qf := entity.QuoteFile{
			Filename:    f.GetFilename(),
			StoragePath: f.GetStoragePath(),
			FileSize:    f.GetFileSize(),
		}
		if f.VendorSlot != nil {
			slot := int(f.GetVendorSlot())
			qf.VendorSlot = &slot
		}
		files = append(files, qf)
	}

	rec, err := s.ctrl.Submit(ctx, title, files)
	if err != nil {
		s.logger.Error("create comparison failed", "title", title, "error", err)
		return nil, common.ToGRPCStatus(err)
	}

	// extraction is dispatched off the request path
	_ = s.queue.Enqueue(ctx, async.Job{ComparisonID: rec.ID})

	return &procurementpb.CreateComparisonResponse{Comparison: utils.ToPBComparison(rec)}, nil
}

func (s *ComparisonsService) GetComparison(ctx context.Context, req *procurementpb.GetComparisonRequest) (*procurementpb.GetComparisonResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, common.ToGRPCStatus(err)
	}
	return &procurementpb.GetComparisonResponse{Comparison: utils.ToPBComparison(rec)}, nil
}

func (s *ComparisonsService) ListComparisons(ctx context.Context, _ *procurementpb.ListComparisonsRequest) (*procurementpb.ListComparisonsResponse, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list comparisons failed", "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	out := make([]*procurementpb.Comparison, len(recs))
	for i, rec := range recs {
		out[i] = utils.ToPBComparison(rec)
	}
	return &procurementpb.ListComparisonsResponse{Comparisons: out}, nil
}

func (s *ComparisonsService) ProcessComparison(ctx context.Context, req *procurementpb.ProcessComparisonRequest) (*procurementpb.ProcessComparisonResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	rec, err := s.ctrl.Advance(ctx, id)
	if err != nil {
		s.logger.Error("process comparison failed", "comparison_id", id, "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	return &procurementpb.ProcessComparisonResponse{Comparison: utils.ToPBComparison(rec)}, nil
}

func (s *ComparisonsService) RegenerateComparison(ctx context.Context, req *procurementpb.RegenerateComparisonRequest) (*procurementpb.RegenerateComparisonResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	rec, err := s.ctrl.Regenerate(ctx, id)
	if err != nil {
		s.logger.Error("regenerate comparison failed", "comparison_id", id, "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	return &procurementpb.RegenerateComparisonResponse{Comparison: utils.ToPBComparison(rec)}, nil
}

func (s *ComparisonsService) GenerateMemo(ctx context.Context, req *procurementpb.GenerateMemoRequest) (*procurementpb.GenerateMemoResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	rec, err := s.memoSvc.Generate(ctx, id)
	if err != nil {
		s.logger.Error("generate memo failed", "comparison_id", id, "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	memoText := ""
	if rec.Memo != nil {
		memoText = *rec.Memo
	}
	return &procurementpb.GenerateMemoResponse{
		Memo:       memoText,
		Comparison: utils.ToPBComparison(rec),
	}, nil
}

func (s *ComparisonsService) ExportComparison(ctx context.Context, req *procurementpb.ExportComparisonRequest) (*procurementpb.ExportComparisonResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	data, filename, err := s.exportSvc.ExportComparisonXLSX(ctx, id)
	if err != nil {
		s.logger.Error("export comparison failed", "comparison_id", id, "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	return &procurementpb.ExportComparisonResponse{Xlsx: data, Filename: filename}, nil
}

// WatchComparison sends the current record immediately, then every
// post-transition record until the client goes away.
func (s *ComparisonsService) WatchComparison(req *procurementpb.WatchComparisonRequest, stream procurementpb.ComparisonsService_WatchComparisonServer) error {
	id, err := parseID(req.GetId())
	if err != nil {
		return err
	}

	updates, cancel := s.hub.Subscribe(id)
	defer cancel()

	rec, err := s.repo.Get(stream.Context(), id)
	if err != nil {
		return common.ToGRPCStatus(err)
	}
	if err := stream.Send(&procurementpb.WatchComparisonResponse{Comparison: utils.ToPBComparison(rec)}); err != nil {
		return err
	}

	s.logger.Info("watch started", "comparison_id", id)
	for {
		select {
		case <-stream.Context().Done():
			s.logger.Info("watch closed", "comparison_id", id)
			return nil
		case rec, ok := <-updates:
			if !ok {
				return nil
			}
			if err := stream.Send(&procurementpb.WatchComparisonResponse{Comparison: utils.ToPBComparison(rec)}); err != nil {
				return err
			}
		}
	}
}

func parseID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	return id, nil
}
