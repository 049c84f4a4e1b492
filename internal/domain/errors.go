package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// No-encontrado y prohibido NO se distinguen: los repositorios devuelven
// (nil, nil) / false en ambos casos para no filtrar la existencia de
// registros de otros propietarios. Solo las violaciones de integridad
// referencial se propagan como error.
var (
	ErrParentNotFound        = errors.New("الطلب أو المهمة غير موجودة أو الوصول مرفوض")
	ErrUsernameAlreadyExists = errors.New("اسم المستخدم مستخدم مسبقاً")
	ErrInvalidCredentials    = errors.New("بيانات الدخول غير صحيحة")
	ErrGuestNotAllowed       = errors.New("دخول الزائر غير مسموح حالياً")
	ErrAttachmentLimit       = errors.New("تم الوصول للحد الأقصى من المرفقات (10)")
)
