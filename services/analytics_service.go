package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mehmood09/restaurant-system/models"
	"github.com/mehmood09/restaurant-system/repository"
)

// pendingStatuses are the order states counted as still in the kitchen.
var pendingStatuses = []string{
	models.OrderStatusPending,
	models.OrderStatusPreparing,
	models.OrderStatusReady,
}

// AnalyticsService computes read-only revenue rollups over completed orders.
type AnalyticsService struct {
	orderRepo repository.OrderRepository
	logger    *zap.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(orderRepo repository.OrderRepository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{orderRepo: orderRepo, logger: logger}
}

// Summary aggregates revenue and order counts as of now, in server-local time.
// Daily covers today's calendar date, weekly the last 7 days, monthly the
// current calendar month. Every sum is zero when nothing matches.
func (s *AnalyticsService) Summary(ctx context.Context, now time.Time) (*models.AnalyticsSummary, *ServiceError) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	weekAgo := today.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	daily, err := s.orderRepo.SumCompletedTotals(ctx, &today, &tomorrow)
	if err != nil {
		s.logger.Error("Failed to compute daily revenue", zap.Error(err))
		return nil, internal("Failed to compute analytics")
	}

	weekly, err := s.orderRepo.SumCompletedTotals(ctx, &weekAgo, nil)
	if err != nil {
		s.logger.Error("Failed to compute weekly revenue", zap.Error(err))
		return nil, internal("Failed to compute analytics")
	}

	monthly, err := s.orderRepo.SumCompletedTotals(ctx, &monthStart, nil)
	if err != nil {
		s.logger.Error("Failed to compute monthly revenue", zap.Error(err))
		return nil, internal("Failed to compute analytics")
	}

	total, err := s.orderRepo.SumCompletedTotals(ctx, nil, nil)
	if err != nil {
		s.logger.Error("Failed to compute total revenue", zap.Error(err))
		return nil, internal("Failed to compute analytics")
	}

	totalOrders, err := s.orderRepo.CountByStatuses(ctx, []string{models.OrderStatusCompleted})
	if err != nil {
		s.logger.Error("Failed to count completed orders", zap.Error(err))
		return nil, internal("Failed to compute analytics")
	}

	pendingOrders, err := s.orderRepo.CountByStatuses(ctx, pendingStatuses)
	if err != nil {
		s.logger.Error("Failed to count pending orders", zap.Error(err))
		return nil, internal("Failed to compute analytics")
	}

	return &models.AnalyticsSummary{
		DailyRevenue:   daily,
		WeeklyRevenue:  weekly,
		MonthlyRevenue: monthly,
		TotalRevenue:   total,
		TotalOrders:    totalOrders,
		PendingOrders:  pendingOrders,
	}, nil
}
