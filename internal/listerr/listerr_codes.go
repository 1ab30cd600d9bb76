package listerr

import "github.com/sirkon/errors"

// AsCode получить код соответствующий ошибке.
func AsCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var target *Error
	if errors.As(err, &target) {
		return target.Code
	}

	var fatal *Fatal
	if errors.As(err, &fatal) {
		return fatal.Code
	}

	return CodeNotOK
}

// Code коды ошибок списка. Они же используются как код завершения процесса
// при фатальной ошибке.
type Code int

const (
	// CodeNotOK неопределённая ошибка.
	CodeNotOK Code = -1

	// CodeOK всё нормально.
	CodeOK Code = 0

	// CodeNoMemory не удалось выделить место под новый узел.
	CodeNoMemory Code = 1

	// CodeDestructed операция над уже уничтоженным списком.
	CodeDestructed Code = 2

	// CodeDestructorRepeated повторное уничтожение списка.
	CodeDestructorRepeated Code = 3

	// CodeEmptyList извлечение из пустого списка.
	CodeEmptyList Code = 4

	// CodeInputDataPoison в цепочке найден освобождённый или не инициализированный узел.
	CodeInputDataPoison Code = 5

	// CodeMemAccessViolation ссылка указывает за пределы хранилища узлов.
	CodeMemAccessViolation Code = 6

	// CodeNotConstructed список не был создан конструктором.
	CodeNotConstructed Code = 7

	// CodeNullInputListPtr на вход подан nil вместо списка.
	CodeNullInputListPtr Code = 8

	// CodeNullListPtr операция над nil списком.
	CodeNullListPtr Code = 9

	// CodeWrongInputListName неправильное имя списка.
	CodeWrongInputListName Code = 10

	// CodeWrongNextNode ссылка на следующий узел нарушает симметрию.
	CodeWrongNextNode Code = 11

	// CodeWrongPrevNode ссылка на предыдущий узел нарушает симметрию.
	CodeWrongPrevNode Code = 12

	// CodeWrongSize число узлов в цепочке не совпадает с размером списка.
	CodeWrongSize Code = 13
)

func (c Code) String() string {
	switch c {
	case CodeNotOK:
		return "LIST_NOT_OK"
	case CodeOK:
		return "LIST_OK"
	case CodeNoMemory:
		return "LIST_NO_MEMORY"
	case CodeDestructed:
		return "LIST_DESTRUCTED"
	case CodeDestructorRepeated:
		return "LIST_DESTRUCTOR_REPEATED"
	case CodeEmptyList:
		return "LIST_EMPTY_LIST"
	case CodeInputDataPoison:
		return "LIST_INPUT_DATA_POISON"
	case CodeMemAccessViolation:
		return "LIST_MEM_ACCESS_VIOLATION"
	case CodeNotConstructed:
		return "LIST_NOT_CONSTRUCTED"
	case CodeNullInputListPtr:
		return "LIST_NULL_INPUT_LIST_PTR"
	case CodeNullListPtr:
		return "LIST_NULL_LIST_PTR"
	case CodeWrongInputListName:
		return "LIST_WRONG_INPUT_LIST_NAME"
	case CodeWrongNextNode:
		return "LIST_WRONG_NEXT_NODE"
	case CodeWrongPrevNode:
		return "LIST_WRONG_PREV_NODE"
	case CodeWrongSize:
		return "LIST_WRONG_SIZE"
	default:
		return "LIST_UNKNOWN_ERROR"
	}
}

// Explain человекочитаемое описание кода.
func (c Code) Explain() string {
	switch c {
	case CodeNotOK:
		return "ERROR"
	case CodeOK:
		return "OK"
	case CodeNoMemory:
		return "Failed to allocate memory"
	case CodeDestructed:
		return "List already destructed"
	case CodeDestructorRepeated:
		return "List destructor repeated"
	case CodeEmptyList:
		return "List is empty"
	case CodeInputDataPoison:
		return "Input data is poison"
	case CodeMemAccessViolation:
		return "Memory access violation"
	case CodeNotConstructed:
		return "List did not constructed, operation is impossible"
	case CodeNullInputListPtr:
		return "The input list pointer turned out to be zero"
	case CodeNullListPtr:
		return "The pointer to the list is null, list lost"
	case CodeWrongInputListName:
		return "Wrong input list name"
	case CodeWrongNextNode:
		return "Wrong pointer to next node found"
	case CodeWrongPrevNode:
		return "Wrong pointer to previous node found"
	case CodeWrongSize:
		return "Wrong list size"
	default:
		return "Unknown error"
	}
}
