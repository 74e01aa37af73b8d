package service

import "errors"

// Ошибки проверки пользовательского ввода. Данные при них не изменяются.
var (
	ErrNoContract     = errors.New("дата начала договора не задана")
	ErrContractExists = errors.New("договор уже настроен, сначала сбросьте его")
	ErrInvalidRange   = errors.New("дата начала должна быть не позже даты окончания")
	ErrBeforeContract = errors.New("дата начала периода не может быть раньше начала договора")
	ErrPeriodNotFound = errors.New("период с таким номером не найден")
	ErrInvalidMonth   = errors.New("некорректный месяц календаря")
	ErrUnknownFormat  = errors.New("неизвестный формат экспорта, доступны json и yaml")
)
