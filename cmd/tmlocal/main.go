// Command tmlocal is the offline TimeManager client. It mirrors the API's
// CRUD model over JSON files in the user config dir instead of a server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jmoreau/timemanager/internal/local"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `tmlocal - offline TimeManager
Usage:
  tmlocal [-dir path] <cmd> [args]

Commands:
  version
  users      list | add -username U -email E [-role R] | edit -id N [...] | rm -id N
  clients    list | add -name N -email E [-phone P] [-company C] | edit -id N [...] | rm -id N
  projects   list | add -name N [-client N] [-desc D] [-status S] | edit -id N [...] | rm -id N
  tasks      list [-project N] [-user N] | add -project N -name T [...] | edit -project N -id N [...] | rm -project N -id N
  time       -project N -task N -hours H
  stats      [-project N]
  theme      [name]
  reset
`)
	os.Exit(2)
}

// optStr returns a pointer only when the flag was set, so unset flags stay
// out of partial updates.
func optStr(fs *flag.FlagSet, name string, p *string) *string {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if !set {
		return nil
	}
	return p
}

func optInt64(fs *flag.FlagSet, name string, p *int64) *int64 {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if !set {
		return nil
	}
	return p
}

func optFloat64(fs *flag.FlagSet, name string, p *float64) *float64 {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if !set {
		return nil
	}
	return p
}

func main() {
	dir := flag.String("dir", "", "data directory (default: user config dir)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	if cmd == "version" {
		fmt.Printf("tmlocal %s (%s)\n", version, buildDate)
		return
	}

	st, err := local.Open(*dir)
	if err != nil {
		fatal(err)
	}

	switch cmd {
	case "users":
		runUsers(st, args)
	case "clients":
		runClients(st, args)
	case "projects":
		runProjects(st, args)
	case "tasks":
		runTasks(st, args)
	case "time":
		runTime(st, args)
	case "stats":
		runStats(st, args)
	case "theme":
		runTheme(st, args)
	case "reset":
		if err := st.Reset(); err != nil {
			fatal(err)
		}
		fmt.Println("data cleared")
	default:
		usage()
	}
}

func runUsers(st *local.Store, args []string) {
	if len(args) < 1 {
		usage()
	}
	switch args[0] {
	case "list":
		users, err := st.Users()
		if err != nil {
			fatal(err)
		}
		printJSON(users)
	case "add":
		fs := flag.NewFlagSet("users add", flag.ExitOnError)
		username := fs.String("username", "", "username")
		email := fs.String("email", "", "email")
		role := fs.String("role", "", "role")
		_ = fs.Parse(args[1:])
		if *username == "" || *email == "" {
			usage()
		}
		u, err := st.CreateUser(*username, *email, *role)
		if err != nil {
			fatal(err)
		}
		printJSON(u)
	case "edit":
		fs := flag.NewFlagSet("users edit", flag.ExitOnError)
		id := fs.Int64("id", 0, "user id")
		username := fs.String("username", "", "username")
		email := fs.String("email", "", "email")
		role := fs.String("role", "", "role")
		_ = fs.Parse(args[1:])
		u, err := st.UpdateUser(*id, local.UserUpdate{
			Username: optStr(fs, "username", username),
			Email:    optStr(fs, "email", email),
			Role:     optStr(fs, "role", role),
		})
		if err != nil {
			fatal(err)
		}
		printJSON(u)
	case "rm":
		fs := flag.NewFlagSet("users rm", flag.ExitOnError)
		id := fs.Int64("id", 0, "user id")
		_ = fs.Parse(args[1:])
		ok, err := st.DeleteUser(*id)
		if err != nil {
			fatal(err)
		}
		if !ok {
			fatal(fmt.Errorf("user %d not found", *id))
		}
		fmt.Println("deleted")
	default:
		usage()
	}
}

func runClients(st *local.Store, args []string) {
	if len(args) < 1 {
		usage()
	}
	switch args[0] {
	case "list":
		clients, err := st.Clients()
		if err != nil {
			fatal(err)
		}
		printJSON(clients)
	case "add":
		fs := flag.NewFlagSet("clients add", flag.ExitOnError)
		name := fs.String("name", "", "name")
		email := fs.String("email", "", "email")
		phone := fs.String("phone", "", "phone")
		company := fs.String("company", "", "company")
		_ = fs.Parse(args[1:])
		if *name == "" || *email == "" {
			usage()
		}
		c, err := st.CreateClient(*name, *email, *phone, *company)
		if err != nil {
			fatal(err)
		}
		printJSON(c)
	case "edit":
		fs := flag.NewFlagSet("clients edit", flag.ExitOnError)
		id := fs.Int64("id", 0, "client id")
		name := fs.String("name", "", "name")
		email := fs.String("email", "", "email")
		phone := fs.String("phone", "", "phone")
		company := fs.String("company", "", "company")
		_ = fs.Parse(args[1:])
		c, err := st.UpdateClient(*id, local.ClientUpdate{
			Name:    optStr(fs, "name", name),
			Email:   optStr(fs, "email", email),
			Phone:   optStr(fs, "phone", phone),
			Company: optStr(fs, "company", company),
		})
		if err != nil {
			fatal(err)
		}
		printJSON(c)
	case "rm":
		fs := flag.NewFlagSet("clients rm", flag.ExitOnError)
		id := fs.Int64("id", 0, "client id")
		_ = fs.Parse(args[1:])
		ok, err := st.DeleteClient(*id)
		if err != nil {
			fatal(err)
		}
		if !ok {
			fatal(fmt.Errorf("client %d not found", *id))
		}
		fmt.Println("deleted")
	default:
		usage()
	}
}

func runProjects(st *local.Store, args []string) {
	if len(args) < 1 {
		usage()
	}
	switch args[0] {
	case "list":
		projects, err := st.Projects()
		if err != nil {
			fatal(err)
		}
		printJSON(projects)
	case "add":
		fs := flag.NewFlagSet("projects add", flag.ExitOnError)
		name := fs.String("name", "", "name")
		client := fs.Int64("client", 0, "client id")
		desc := fs.String("desc", "", "description")
		status := fs.String("status", "", "status")
		_ = fs.Parse(args[1:])
		if *name == "" {
			usage()
		}
		p, err := st.CreateProject(*name, optInt64(fs, "client", client), *desc, *status)
		if err != nil {
			fatal(err)
		}
		printJSON(p)
	case "edit":
		fs := flag.NewFlagSet("projects edit", flag.ExitOnError)
		id := fs.Int64("id", 0, "project id")
		name := fs.String("name", "", "name")
		client := fs.Int64("client", 0, "client id")
		desc := fs.String("desc", "", "description")
		status := fs.String("status", "", "status")
		_ = fs.Parse(args[1:])
		p, err := st.UpdateProject(*id, local.ProjectUpdate{
			Name:        optStr(fs, "name", name),
			ClientID:    optInt64(fs, "client", client),
			Description: optStr(fs, "desc", desc),
			Status:      optStr(fs, "status", status),
		})
		if err != nil {
			fatal(err)
		}
		printJSON(p)
	case "rm":
		fs := flag.NewFlagSet("projects rm", flag.ExitOnError)
		id := fs.Int64("id", 0, "project id")
		_ = fs.Parse(args[1:])
		ok, err := st.DeleteProject(*id)
		if err != nil {
			fatal(err)
		}
		if !ok {
			fatal(fmt.Errorf("project %d not found", *id))
		}
		fmt.Println("deleted")
	default:
		usage()
	}
}

func runTasks(st *local.Store, args []string) {
	if len(args) < 1 {
		usage()
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("tasks list", flag.ExitOnError)
		project := fs.Int64("project", 0, "filter by project id")
		user := fs.Int64("user", 0, "filter by assignee id")
		_ = fs.Parse(args[1:])
		var (
			tasks []local.Task
			err   error
		)
		switch {
		case *project != 0:
			tasks, err = st.TasksByProject(*project)
		case *user != 0:
			tasks, err = st.TasksByUser(*user)
		default:
			tasks, err = st.AllTasks()
		}
		if err != nil {
			fatal(err)
		}
		printJSON(tasks)
	case "add":
		fs := flag.NewFlagSet("tasks add", flag.ExitOnError)
		project := fs.Int64("project", 0, "project id")
		name := fs.String("name", "", "name")
		desc := fs.String("desc", "", "description")
		assigned := fs.Int64("assigned", 0, "assignee user id")
		status := fs.String("status", "", "status")
		_ = fs.Parse(args[1:])
		if *project == 0 || *name == "" {
			usage()
		}
		t, err := st.CreateTask(*project, *name, *desc, optInt64(fs, "assigned", assigned), *status)
		if err != nil {
			fatal(err)
		}
		printJSON(t)
	case "edit":
		fs := flag.NewFlagSet("tasks edit", flag.ExitOnError)
		project := fs.Int64("project", 0, "project id")
		id := fs.Int64("id", 0, "task id")
		name := fs.String("name", "", "name")
		desc := fs.String("desc", "", "description")
		assigned := fs.Int64("assigned", 0, "assignee user id")
		hours := fs.Float64("hours", 0, "time spent total")
		status := fs.String("status", "", "status")
		_ = fs.Parse(args[1:])
		t, err := st.UpdateTask(*project, *id, local.TaskUpdate{
			Name:        optStr(fs, "name", name),
			Description: optStr(fs, "desc", desc),
			AssignedTo:  optInt64(fs, "assigned", assigned),
			TimeSpent:   optFloat64(fs, "hours", hours),
			Status:      optStr(fs, "status", status),
		})
		if err != nil {
			fatal(err)
		}
		printJSON(t)
	case "rm":
		fs := flag.NewFlagSet("tasks rm", flag.ExitOnError)
		project := fs.Int64("project", 0, "project id")
		id := fs.Int64("id", 0, "task id")
		_ = fs.Parse(args[1:])
		ok, err := st.DeleteTask(*project, *id)
		if err != nil {
			fatal(err)
		}
		if !ok {
			fatal(fmt.Errorf("task %d not found in project %d", *id, *project))
		}
		fmt.Println("deleted")
	default:
		usage()
	}
}

func runTime(st *local.Store, args []string) {
	fs := flag.NewFlagSet("time", flag.ExitOnError)
	project := fs.Int64("project", 0, "project id")
	task := fs.Int64("task", 0, "task id")
	hours := fs.Float64("hours", 0, "hours to add")
	_ = fs.Parse(args)
	if *project == 0 || *task == 0 {
		usage()
	}
	t, err := st.AddTime(*project, *task, *hours)
	if err != nil {
		fatal(err)
	}
	printJSON(t)
}

func runStats(st *local.Store, args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	project := fs.Int64("project", 0, "project id")
	_ = fs.Parse(args)
	if *project != 0 {
		stats, err := st.ProjectBoard(*project)
		if err != nil {
			fatal(err)
		}
		printJSON(stats)
		return
	}
	stats, err := st.Dashboard()
	if err != nil {
		fatal(err)
	}
	printJSON(stats)
}

func runTheme(st *local.Store, args []string) {
	if len(args) == 0 {
		fmt.Println(st.Theme("light"))
		return
	}
	if err := st.SetTheme(args[0]); err != nil {
		fatal(err)
	}
	fmt.Println("theme set to", args[0])
}
