// Package docs Trip Planner Service API.
//
// Сервис планирования путешествий. Ведёт коллекцию поездок с маршрутами
// из точек интереса, начисляет очки и значки за посещения, подбирает
// кандидатов POI вокруг координаты и оценивает время в пути.
//
// Основные возможности:
// - Поездки: создание, редактирование, выбор текущей, списки предстоящих/текущих/прошедших
// - Маршруты: добавление, удаление и перестановка POI, отметка посещений
// - Награды: очки по категориям, значки за три посещения категории, уровни профиля
// - Обнаружение: кандидаты POI вокруг координаты, текстовый поиск, оценка времени в пути
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
