package query

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("case query not found")

type CaseQuery struct {
	ID                uint64     `gorm:"column:query_id;primaryKey;autoIncrement" json:"query_id"`
	QueryCode         string     `gorm:"column:query_code;size:13;uniqueIndex" json:"query_code"`
	EnquiryID         uint64     `gorm:"column:enquiry_id;not null;index" json:"enquiry_id"`
	RaisedByUserID    uint64     `gorm:"column:raised_by_user_id;not null" json:"raised_by_user_id"`
	QueryText         string     `gorm:"column:query_text;type:text;not null" json:"query_text"`
	ResponseText      string     `gorm:"column:response_text;type:text" json:"response_text"`
	RespondedByUserID *uint64    `gorm:"column:responded_by_user_id" json:"responded_by_user_id"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	RespondedAt       *time.Time `gorm:"column:responded_at" json:"responded_at"`
}

func (CaseQuery) TableName() string { return "case_queries" }
