package models

import "strconv"

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func formatInt(v int) string { return strconv.Itoa(v) }

func formatBool(v bool) string { return strconv.FormatBool(v) }
