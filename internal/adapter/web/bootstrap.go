package web

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"campaign-admin/internal/core/port"
)

// The loaders below fetch a screen's data concurrently. Each result is
// applied on its own; a failed fetch is logged and leaves that part empty.
// No goroutine returns an error, so one failure never cancels the others.

type referenceData struct {
	Sellers []port.SellerResponse
	Towns   []string
}

func (h *Handler) loadDashboard(ctx context.Context) dashboardView {
	var v dashboardView
	var g errgroup.Group
	g.Go(func() error {
		campaigns, err := h.api.ListCampaigns(ctx)
		if err != nil {
			h.unavailable("campaigns", err)
			return nil
		}
		v.Campaigns = campaigns
		return nil
	})
	g.Go(func() error {
		sellers, err := h.api.ListSellers(ctx)
		if err != nil {
			h.unavailable("sellers", err)
			return nil
		}
		v.Sellers = sellers
		return nil
	})
	_ = g.Wait()
	return v
}

func (h *Handler) loadReference(ctx context.Context) referenceData {
	var g errgroup.Group
	ref := h.goReference(ctx, &g)
	_ = g.Wait()
	return *ref
}

// loadEdit fetches the campaign alongside the reference data. The
// campaign is nil when it could not be loaded.
func (h *Handler) loadEdit(ctx context.Context, id int64) (*port.CampaignResponse, referenceData) {
	var campaign *port.CampaignResponse
	var g errgroup.Group
	g.Go(func() error {
		c, err := h.api.GetCampaign(ctx, id)
		if err != nil {
			h.logger.Warn("campaign unavailable", slog.Int64("campaign_id", id), slog.Any("error", err))
			return nil
		}
		campaign = c
		return nil
	})
	ref := h.goReference(ctx, &g)
	_ = g.Wait()
	return campaign, *ref
}

func (h *Handler) goReference(ctx context.Context, g *errgroup.Group) *referenceData {
	ref := &referenceData{}
	g.Go(func() error {
		sellers, err := h.api.ListSellers(ctx)
		if err != nil {
			h.unavailable("sellers", err)
			return nil
		}
		ref.Sellers = sellers
		return nil
	})
	g.Go(func() error {
		towns, err := h.api.ListTowns(ctx)
		if err != nil {
			h.unavailable("towns", err)
			return nil
		}
		ref.Towns = towns
		return nil
	})
	return ref
}

func (h *Handler) unavailable(what string, err error) {
	h.logger.Warn("reference data unavailable", slog.String("resource", what), slog.Any("error", err))
}
