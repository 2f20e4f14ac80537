// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/watchface-sync/models"

func humanizeErrorKind(kind models.ErrorKind) string {
	switch kind {
	case models.ErrorUnableToSendMessage:
		return "Не удалось отправить сообщение телефону"
	case models.ErrorNoResponseFromPhone:
		return "Телефон не ответил"
	default:
		return string(kind)
	}
}
