package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodnote-ai/moodnote/app/logic/v1"
	"github.com/moodnote-ai/moodnote/app/response"
	"github.com/moodnote-ai/moodnote/pkg/utils"
)

type TrendRequest struct {
	Days int `json:"days" form:"days"`
}

func (s *HttpSrv) DailyTrend(c *gin.Context) {
	var (
		err error
		req TrendRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	buckets, err := v1.NewTrendLogic(c, s.Core).DailyTrend(req.Days)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{
		"list": buckets,
	})
}

func (s *HttpSrv) MoodCurve(c *gin.Context) {
	var (
		err error
		req TrendRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	points, err := v1.NewTrendLogic(c, s.Core).MoodCurve(req.Days)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{
		"list": points,
	})
}
