package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"vacation-tracker-bot/internal/service"
	"vacation-tracker-bot/pkg/dateutil"
)

var validationErrors = []error{
	service.ErrNoContract,
	service.ErrContractExists,
	service.ErrInvalidRange,
	service.ErrBeforeContract,
	service.ErrPeriodNotFound,
	service.ErrInvalidMonth,
	service.ErrUnknownFormat,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// periodArgs - аргументы /work и /sick: две даты и необязательный объект
type periodArgs struct {
	start    time.Time
	end      time.Time
	location string
}

func parsePeriodArgs(args string, now time.Time, withLocation bool) (periodArgs, error) {
	parts := strings.Fields(args)
	if len(parts) < 2 || (!withLocation && len(parts) > 2) {
		return periodArgs{}, errors.New("нужно указать дату начала и дату окончания")
	}

	start, err := dateutil.Parse(parts[0], now)
	if err != nil {
		return periodArgs{}, fmt.Errorf("дата начала: %w", err)
	}

	end, err := dateutil.Parse(parts[1], now)
	if err != nil {
		return periodArgs{}, fmt.Errorf("дата окончания: %w", err)
	}

	return periodArgs{
		start:    start,
		end:      end,
		location: strings.Join(parts[2:], " "),
	}, nil
}

// parseIndex разбирает номер периода из списка (с единицы) в позицию с нуля
func parseIndex(args string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || n < 1 {
		return 0, errors.New("укажите номер периода из списка, например: 1")
	}
	return n - 1, nil
}

// parseCalendarArgs: без аргументов - текущий месяц, "М" - месяц текущего года, "ГГГГ М" - заданный
func parseCalendarArgs(args string, now time.Time) (int, time.Month, error) {
	parts := strings.Fields(args)

	switch len(parts) {
	case 0:
		return now.Year(), now.Month(), nil
	case 1:
		month, err := parseMonth(parts[0])
		if err != nil {
			return 0, 0, err
		}
		return now.Year(), month, nil
	case 2:
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, errors.New("год должен быть числом")
		}
		month, err := parseMonth(parts[1])
		if err != nil {
			return 0, 0, err
		}
		return year, month, nil
	default:
		return 0, 0, errors.New("используйте: /calendar [год месяц]")
	}
}

func parseMonth(s string) (time.Month, error) {
	m, err := strconv.Atoi(s)
	if err != nil || m < 1 || m > 12 {
		return 0, errors.New("месяц должен быть числом от 1 до 12")
	}
	return time.Month(m), nil
}

func parseBalance(s string) (int, error) {
	balance, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("баланс должен быть целым числом, например: 0, 5 или -3")
	}
	return balance, nil
}
