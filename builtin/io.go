package builtin

import (
	"github.com/Shafin098/pakhi-bhasha/host"
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/value"
)

// ioBuiltins closes over h so every I/O built-in runs against the module's
// Host rather than package os directly.
func ioBuiltins(h host.Host) []entry {
	return []entry{
		builtin("_রিড-লাইন", readLine(h)),
		builtin("_রিড-ফাইল", readFile(h)),
		builtin("_রাইট-ফাইল", writeFile(h)),
		builtin("_ডিলিট-ফাইল", deleteFile(h)),
		builtin("_নতুন-ডাইরেক্টরি", mkdir(h)),
		builtin("_রিড-ডাইরেক্টরি", readDir(h)),
		builtin("_ডিলিট-ডাইরেক্টরি", deleteDir(h)),
		builtin("_ফাইল-নাকি-ডাইরেক্টরি", statKind(h)),
	}
}

func stringArg(name string, v value.Value) (string, error) {
	s, ok := v.(*value.String)
	if !ok {
		return "", perr.New(perr.TypeError, "%s expects a স্ট্রিং, got %s", name, v.Kind())
	}
	return s.Value, nil
}

func readLine(h host.Host) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return nil, perr.New(perr.ArityError, "_রিড-লাইন expects 0 arguments, got %d", len(args))
		}
		line, err := h.ReadLine()
		if err != nil {
			return nil, perr.Wrap(perr.IOError, err, "_রিড-লাইন: could not read from standard input")
		}
		return &value.String{Value: line}, nil
	}
}

func readFile(h host.Host) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, perr.New(perr.ArityError, "_রিড-ফাইল expects 1 argument, got %d", len(args))
		}
		path, err := stringArg("_রিড-ফাইল", args[0])
		if err != nil {
			return nil, err
		}
		data, err := h.ReadFile(path)
		if err != nil {
			return nil, perr.Wrap(perr.IOError, err, "_রিড-ফাইল: could not read %q", path)
		}
		return &value.String{Value: string(data)}, nil
	}
}

func writeFile(h host.Host) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, perr.New(perr.ArityError, "_রাইট-ফাইল expects 2 arguments, got %d", len(args))
		}
		path, err := stringArg("_রাইট-ফাইল", args[0])
		if err != nil {
			return nil, err
		}
		content, err := stringArg("_রাইট-ফাইল", args[1])
		if err != nil {
			return nil, err
		}
		if err := h.WriteFile(path, []byte(content)); err != nil {
			return nil, perr.Wrap(perr.IOError, err, "_রাইট-ফাইল: could not write %q", path)
		}
		return value.Nil, nil
	}
}

func deleteFile(h host.Host) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, perr.New(perr.ArityError, "_ডিলিট-ফাইল expects 1 argument, got %d", len(args))
		}
		path, err := stringArg("_ডিলিট-ফাইল", args[0])
		if err != nil {
			return nil, err
		}
		if err := h.DeleteFile(path); err != nil {
			return nil, perr.Wrap(perr.IOError, err, "_ডিলিট-ফাইল: could not delete %q", path)
		}
		return value.Nil, nil
	}
}

func mkdir(h host.Host) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, perr.New(perr.ArityError, "_নতুন-ডাইরেক্টরি expects 1 argument, got %d", len(args))
		}
		path, err := stringArg("_নতুন-ডাইরেক্টরি", args[0])
		if err != nil {
			return nil, err
		}
		if err := h.Mkdir(path); err != nil {
			return nil, perr.Wrap(perr.IOError, err, "_নতুন-ডাইরেক্টরি: could not create %q", path)
		}
		return value.Nil, nil
	}
}

func readDir(h host.Host) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, perr.New(perr.ArityError, "_রিড-ডাইরেক্টরি expects 1 argument, got %d", len(args))
		}
		path, err := stringArg("_রিড-ডাইরেক্টরি", args[0])
		if err != nil {
			return nil, err
		}
		names, err := h.ReadDir(path)
		if err != nil {
			return nil, perr.Wrap(perr.IOError, err, "_রিড-ডাইরেক্টরি: could not read %q", path)
		}
		items := make([]value.Value, len(names))
		for i, n := range names {
			items[i] = &value.String{Value: n}
		}
		return &value.List{Items: items}, nil
	}
}

func deleteDir(h host.Host) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, perr.New(perr.ArityError, "_ডিলিট-ডাইরেক্টরি expects 1 argument, got %d", len(args))
		}
		path, err := stringArg("_ডিলিট-ডাইরেক্টরি", args[0])
		if err != nil {
			return nil, err
		}
		if err := h.DeleteDir(path); err != nil {
			return nil, perr.Wrap(perr.IOError, err, "_ডিলিট-ডাইরেক্টরি: could not delete %q", path)
		}
		return value.Nil, nil
	}
}

func statKind(h host.Host) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, perr.New(perr.ArityError, "_ফাইল-নাকি-ডাইরেক্টরি expects 1 argument, got %d", len(args))
		}
		path, err := stringArg("_ফাইল-নাকি-ডাইরেক্টরি", args[0])
		if err != nil {
			return nil, err
		}
		kind, err := h.Stat(path)
		if err != nil {
			return nil, perr.Wrap(perr.IOError, err, "_ফাইল-নাকি-ডাইরেক্টরি: could not stat %q", path)
		}
		return &value.String{Value: string(kind)}, nil
	}
}
