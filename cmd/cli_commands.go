package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fzft/go-genset/set"
)

var errExit = errors.New("exit")

// CliContext is the state shared by command procs.
type CliContext struct {
	store *Store
	cfg   *CliConfig
}

type cliCommand struct {
	name    string
	minArgs int
	maxArgs int // -1: unlimited
	usage   string
	summary string
	group   string
	proc    func(ctx *CliContext, args []string) (string, error)
}

var cliCommands []cliCommand

func init() {
	cliCommands = []cliCommand{
		{"new", 1, 2, "new <name> [hash|ordered]", "create a named set", "admin", cmdNew},
		{"drop", 1, 1, "drop <name>", "delete a named set", "admin", cmdDrop},
		{"sets", 0, 0, "sets", "list all set names", "admin", cmdSets},
		{"clone", 2, 2, "clone <src> <dst>", "register a deep copy of src as dst", "admin", cmdClone},
		{"add", 2, -1, "add <set> <member> [member ...]", "insert members", "write", cmdAdd},
		{"rem", 2, -1, "rem <set> <member> [member ...]", "remove members", "write", cmdRem},
		{"checkadd", 2, 2, "checkadd <set> <member>", "report whether member was present, inserting it if not", "write", cmdCheckAdd},
		{"checkrem", 2, 2, "checkrem <set> <member>", "report whether member was absent, removing it if not", "write", cmdCheckRem},
		{"addall", 2, 2, "addall <dst> <src>", "insert every member of src into dst", "write", cmdAddAll},
		{"remall", 2, 2, "remall <dst> <src>", "remove every member of src from dst", "write", cmdRemAll},
		{"pop", 1, 1, "pop <set>", "remove and return an arbitrary member (hash sets only)", "write", cmdPop},
		{"clear", 1, 1, "clear <set>", "remove all members, keeping capacity", "write", cmdClear},
		{"reset", 1, 1, "reset <set>", "remove all members and reallocate", "write", cmdReset},
		{"has", 2, 2, "has <set> <member>", "membership test", "read", cmdHas},
		{"get", 2, 2, "get <set> <member>", "return the stored member equal to the argument", "read", cmdGet},
		{"members", 1, 1, "members <set>", "list members (insertion order for ordered sets)", "read", cmdMembers},
		{"enum", 1, 1, "enum <set>", "list members with positions (ordered sets only)", "read", cmdEnum},
		{"len", 1, 1, "len <set>", "number of members", "read", cmdLen},
		{"eq", 2, 2, "eq <a> <b>", "set equality; order-sensitive when both are ordered", "compare", cmdEq},
		{"subset", 2, 2, "subset <a> <b>", "is a a subset of b (equality allowed)", "compare", cmdSubset},
		{"psubset", 2, 2, "psubset <a> <b>", "is a a proper subset of b", "compare", cmdProperSubset},
		{"disjoint", 2, 2, "disjoint <a> <b>", "do a and b share no member", "compare", cmdDisjoint},
		{"union", 2, 3, "union <a> <b> [dst]", "members in a or b", "algebra", cmdUnion},
		{"inter", 2, 3, "inter <a> <b> [dst]", "members in both a and b", "algebra", cmdInter},
		{"diff", 2, 3, "diff <a> <b> [dst]", "members in a but not b", "algebra", cmdDiff},
		{"sdiff", 2, 3, "sdiff <a> <b> [dst]", "members in exactly one of a and b", "algebra", cmdSymDiff},
		{"version", 0, 0, "version", "print shell version", "admin", cmdVersion},
		{"help", 0, 1, "help [command]", "list commands or describe one", "admin", cmdHelp},
		{"exit", 0, 0, "exit", "leave the shell", "admin", cmdExit},
		{"quit", 0, 0, "quit", "leave the shell", "admin", cmdExit},
	}
}

var commandTable map[string]*cliCommand

func init() {
	commandTable = make(map[string]*cliCommand, len(cliCommands))
	for i := range cliCommands {
		commandTable[cliCommands[i].name] = &cliCommands[i]
	}
}

func cmdNew(ctx *CliContext, args []string) (string, error) {
	ordered := ctx.cfg.OrderedDefault
	if len(args) == 2 {
		switch args[1] {
		case "ordered":
			ordered = true
		case "hash":
			ordered = false
		default:
			return "", fmt.Errorf("unknown set kind %q, want 'hash' or 'ordered'", args[1])
		}
	}
	if err := ctx.store.Create(args[0], ordered); err != nil {
		return "", err
	}
	return "OK", nil
}

func cmdDrop(ctx *CliContext, args []string) (string, error) {
	if err := ctx.store.Drop(args[0]); err != nil {
		return "", err
	}
	return "OK", nil
}

func cmdSets(ctx *CliContext, args []string) (string, error) {
	names := ctx.store.Names()
	if len(names) == 0 {
		return "(none)", nil
	}
	var b strings.Builder
	for _, name := range names {
		s, ordered, _ := ctx.store.Get(name)
		kind := "hash"
		if ordered {
			kind = "ordered"
		}
		fmt.Fprintf(&b, "%s (%s, %d members)\n", name, kind, s.Len())
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func cmdClone(ctx *CliContext, args []string) (string, error) {
	s, ordered, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	var c shellSet
	if ordered {
		c = s.(*set.OrderedSet[string]).Clone()
	} else {
		c = s.(*set.HashSet[string]).Clone()
	}
	if err := ctx.store.Put(args[1], c, ordered); err != nil {
		return "", err
	}
	return "OK", nil
}

func cmdAdd(ctx *CliContext, args []string) (string, error) {
	s, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	added := 0
	for _, member := range args[1:] {
		if !s.TestAndInsert(member) {
			added++
		}
	}
	return strconv.Itoa(added), nil
}

func cmdRem(ctx *CliContext, args []string) (string, error) {
	s, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	removed := 0
	for _, member := range args[1:] {
		if !s.TestAndRemove(member) {
			removed++
		}
	}
	return strconv.Itoa(removed), nil
}

func cmdCheckAdd(ctx *CliContext, args []string) (string, error) {
	s, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(s.TestAndInsert(args[1])), nil
}

func cmdCheckRem(ctx *CliContext, args []string) (string, error) {
	s, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(s.TestAndRemove(args[1])), nil
}

func cmdAddAll(ctx *CliContext, args []string) (string, error) {
	dst, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	src, _, err := ctx.store.Get(args[1])
	if err != nil {
		return "", err
	}
	dst.InsertAll(src)
	return "OK", nil
}

func cmdRemAll(ctx *CliContext, args []string) (string, error) {
	dst, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	src, _, err := ctx.store.Get(args[1])
	if err != nil {
		return "", err
	}
	dst.RemoveAll(src)
	return "OK", nil
}

func cmdPop(ctx *CliContext, args []string) (string, error) {
	s, ordered, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	if ordered {
		return "", fmt.Errorf("pop is not defined for ordered sets")
	}
	member, err := s.(*set.HashSet[string]).Pop()
	if err != nil {
		return "", err
	}
	return member, nil
}

func cmdClear(ctx *CliContext, args []string) (string, error) {
	s, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	s.Clear()
	return "OK", nil
}

func cmdReset(ctx *CliContext, args []string) (string, error) {
	s, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	s.Reset()
	return "OK", nil
}

func cmdHas(ctx *CliContext, args []string) (string, error) {
	s, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(s.Contains(args[1])), nil
}

func cmdGet(ctx *CliContext, args []string) (string, error) {
	s, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	member, err := s.Lookup(args[1])
	if err != nil {
		return "", err
	}
	return member, nil
}

func cmdMembers(ctx *CliContext, args []string) (string, error) {
	s, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	items := s.Items()
	if len(items) == 0 {
		return "(empty)", nil
	}
	return strings.Join(items, " "), nil
}

func cmdEnum(ctx *CliContext, args []string) (string, error) {
	s, ordered, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	if !ordered {
		return "", fmt.Errorf("enum requires an ordered set")
	}
	oset := s.(*set.OrderedSet[string])
	if oset.Len() == 0 {
		return "(empty)", nil
	}
	var b strings.Builder
	it := oset.Iterator()
	for it.Next() {
		fmt.Fprintf(&b, "%d) %s\n", it.Index(), it.Value())
	}
	if err := it.Err(); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func cmdLen(ctx *CliContext, args []string) (string, error) {
	s, _, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(s.Len()), nil
}

func cmdEq(ctx *CliContext, args []string) (string, error) {
	a, aOrdered, err := ctx.store.Get(args[0])
	if err != nil {
		return "", err
	}
	b, bOrdered, err := ctx.store.Get(args[1])
	if err != nil {
		return "", err
	}
	var equal bool
	switch {
	case aOrdered && bOrdered:
		equal = a.(*set.OrderedSet[string]).Equal(b.(*set.OrderedSet[string]))
	case !aOrdered:
		equal = a.(*set.HashSet[string]).Equal(b)
	default:
		equal = b.(*set.HashSet[string]).Equal(a)
	}
	return strconv.FormatBool(equal), nil
}

func cmdSubset(ctx *CliContext, args []string) (string, error) {
	a, b, err := twoSets(ctx, args)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(a.IsSubsetOf(b)), nil
}

func cmdProperSubset(ctx *CliContext, args []string) (string, error) {
	a, b, err := twoSets(ctx, args)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(a.IsProperSubsetOf(b)), nil
}

func cmdDisjoint(ctx *CliContext, args []string) (string, error) {
	a, b, err := twoSets(ctx, args)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(a.Disjoint(b)), nil
}

func cmdUnion(ctx *CliContext, args []string) (string, error) {
	return algebra(ctx, args, shellSet.Union)
}

func cmdInter(ctx *CliContext, args []string) (string, error) {
	return algebra(ctx, args, shellSet.Intersect)
}

func cmdDiff(ctx *CliContext, args []string) (string, error) {
	return algebra(ctx, args, shellSet.Difference)
}

func cmdSymDiff(ctx *CliContext, args []string) (string, error) {
	return algebra(ctx, args, shellSet.SymmetricDifference)
}

func cmdVersion(ctx *CliContext, args []string) (string, error) {
	return "genset " + ctx.cfg.AppVersion, nil
}

func cmdHelp(ctx *CliContext, args []string) (string, error) {
	if len(args) == 1 {
		command, ok := commandTable[strings.ToLower(args[0])]
		if !ok {
			return "", fmt.Errorf("unknown command %q", args[0])
		}
		return fmt.Sprintf("%s\n  %s", command.usage, command.summary), nil
	}
	var b strings.Builder
	group := ""
	for _, command := range cliCommands {
		if command.name == "quit" {
			continue
		}
		if command.group != group {
			group = command.group
			fmt.Fprintf(&b, "# %s\n", group)
		}
		fmt.Fprintf(&b, "  %-36s %s\n", command.usage, command.summary)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func cmdExit(ctx *CliContext, args []string) (string, error) {
	return "", errExit
}

func twoSets(ctx *CliContext, args []string) (shellSet, shellSet, error) {
	a, _, err := ctx.store.Get(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, _, err := ctx.store.Get(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// algebra runs op on two named sets. The result is printed, or registered as
// an unordered set when a destination name is given.
func algebra(ctx *CliContext, args []string, op func(shellSet, set.Set[string]) *set.HashSet[string]) (string, error) {
	a, b, err := twoSets(ctx, args)
	if err != nil {
		return "", err
	}
	result := op(a, b)
	if len(args) == 3 {
		if err := ctx.store.Put(args[2], result, false); err != nil {
			return "", err
		}
		return "OK", nil
	}
	items := result.Items()
	if len(items) == 0 {
		return "(empty)", nil
	}
	return strings.Join(items, " "), nil
}
