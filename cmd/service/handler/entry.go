package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/moodnote-ai/moodnote/app/logic/v1"
	"github.com/moodnote-ai/moodnote/app/response"
	"github.com/moodnote-ai/moodnote/pkg/errors"
	"github.com/moodnote-ai/moodnote/pkg/i18n"
	"github.com/moodnote-ai/moodnote/pkg/types"
	"github.com/moodnote-ai/moodnote/pkg/utils"
)

type CreateEntryRequest struct {
	Text string          `json:"text" form:"text" binding:"required"`
	Mood types.MoodLabel `json:"mood" form:"mood"`
}

func (s *HttpSrv) CreateEntry(c *gin.Context) {
	var (
		err error
		req CreateEntryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	res, err := v1.NewEntryLogic(c, s.Core).CreateEntry(req.Text, req.Mood)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, res)
}

type QuickCheckinRequest struct {
	Mood   types.MoodLabel `json:"mood" form:"mood" binding:"required"`
	Stress int             `json:"stress" form:"stress" binding:"gte=0,lte=100"`
}

func (s *HttpSrv) QuickCheckin(c *gin.Context) {
	var (
		err error
		req QuickCheckinRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewEntryLogic(c, s.Core).QuickCheckin(req.Mood, req.Stress)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

type ListEntriesRequest struct {
	Limit uint64 `json:"limit" form:"limit"`
}

func (s *HttpSrv) ListEntries(c *gin.Context) {
	var (
		err error
		req ListEntriesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewEntryLogic(c, s.Core).ListEntries(req.Limit)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{
		"list":  list,
		"total": len(list),
	})
}

type ListEntriesByRangeRequest struct {
	StartDate string `json:"start_date" form:"start_date" binding:"required"`
	EndDate   string `json:"end_date" form:"end_date" binding:"required"`
}

func (r *ListEntriesByRangeRequest) Parse() (time.Time, time.Time, error) {
	const layout = "2006-01-02"
	start, err := time.ParseInLocation(layout, r.StartDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("api.ListEntriesByRange.Parse.StartDate", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}

	end, err := time.ParseInLocation(layout, r.EndDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("api.ListEntriesByRange.Parse.EndDate", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}

	// the range is inclusive of the whole end day
	return start, end.Add(time.Hour*24 - time.Nanosecond), nil
}

func (s *HttpSrv) ListEntriesByRange(c *gin.Context) {
	var (
		err error
		req ListEntriesByRangeRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	start, end, err := req.Parse()
	if err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewEntryLogic(c, s.Core).ListByDateRange(start, end)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{
		"list":  list,
		"total": len(list),
	})
}

func (s *HttpSrv) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.APIError(c, errors.New("api.DeleteEntry.ParseInt", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}

	if err = v1.NewEntryLogic(c, s.Core).DeleteEntry(id); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) ClearEntries(c *gin.Context) {
	if err := v1.NewEntryLogic(c, s.Core).ClearEntries(); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) Export(c *gin.Context) {
	data, err := v1.NewEntryLogic(c, s.Core).Export()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, data)
}
