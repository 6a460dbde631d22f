package providers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/dima123dm/SvitloMonitorBot/internal/schedule"
)

// ScrapeProvider parses one oblenergo's shutdowns page. The page lists
// confirmed-off windows per queue, so its schedules come out in interval-list
// form. It is the authoritative source for its region when the merged view is
// built.
type ScrapeProvider struct {
	baseURL  string
	region   string
	timeout  time.Duration
	loadPage func(context.Context, string) ([]byte, error)
}

func NewScrapeProvider(baseURL, region string, timeout time.Duration) *ScrapeProvider {
	return &ScrapeProvider{
		baseURL:  baseURL,
		region:   region,
		timeout:  timeout,
		loadPage: loadPage,
	}
}

// Region returns the oblast this provider scrapes.
func (p *ScrapeProvider) Region() string {
	return p.region
}

// Fetch loads and parses the page into a Region.
func (p *ScrapeProvider) Fetch(ctx context.Context) (Region, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	html, err := p.loadPage(ctx, p.baseURL)
	if err != nil {
		return Region{}, fmt.Errorf("load shutdowns page: %w", err)
	}

	res, err := p.parsePage(html)
	if err != nil {
		return Region{}, fmt.Errorf("parse shutdowns page: %w", err)
	}

	return res, nil
}

// parsePage extracts per-queue off windows from markup of the form:
//
//	<div id="gpv">
//	  <div class="gpv-day" data-date="2025-11-20">
//	    <div class="queue" data-queue="3.1">
//	      <span class="period">08:00-12:00</span>
//	      ...
func (p *ScrapeProvider) parsePage(html []byte) (Region, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return Region{}, fmt.Errorf("parse HTML: %w", err)
	}

	root := doc.Find("div#gpv").First()
	if root.Length() == 0 {
		return Region{}, errors.New("find schedule root by [div#gpv] selector")
	}

	res := Region{
		Name:     p.region,
		Schedule: make(map[string]map[string]*schedule.RawSchedule),
	}

	root.Find("div.gpv-day").Each(func(_ int, day *goquery.Selection) {
		date, ok := day.Attr("data-date")
		if !ok || date == "" {
			return
		}

		day.Find("div.queue").Each(func(_ int, q *goquery.Selection) {
			queue, ok := q.Attr("data-queue")
			if !ok || queue == "" {
				return
			}

			var windows []string
			q.Find("span.period").Each(func(_ int, s *goquery.Selection) {
				if text := strings.TrimSpace(s.Text()); text != "" {
					windows = append(windows, text)
				}
			})

			if res.Schedule[queue] == nil {
				res.Schedule[queue] = make(map[string]*schedule.RawSchedule)
			}
			res.Schedule[queue][date] = schedule.NewIntervalList(windows)
		})
	})

	if len(res.Schedule) == 0 {
		return Region{}, errors.New("no queues found on shutdowns page")
	}

	return res, nil
}
