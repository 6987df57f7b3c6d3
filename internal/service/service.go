package service

import "github.com/shopspring/decimal"

var centsPerUnit = decimal.NewFromInt(100)
