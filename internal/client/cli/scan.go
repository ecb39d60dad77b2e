package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/beautyease/beautyease/internal/client/analysis"
	"github.com/beautyease/beautyease/internal/client/capture"
	"github.com/beautyease/beautyease/internal/shared"
	"github.com/beautyease/beautyease/internal/wire"
)

// Scan runs the skin scan flow: obtain a still from the camera or a file,
// analyze it, show the assessment, and optionally save it to the account
// and apply the detected skin type to the profile.
func (a *App) Scan(ctx context.Context) error {
	defer a.capture.Reset()

	still, err := a.obtainStill(ctx)
	if err != nil || still == nil {
		return err
	}

	printlnFn("Analyzing your skin...")
	op := analysis.Start(a.analyzer, *still)

	select {
	case <-op.Done():
	case <-ctx.Done():
		op.Abandon()
		return ctx.Err()
	}

	result, err := op.Result()
	if err != nil {
		printlnFn("Analysis failed:", err.Error())
		return err
	}
	if result == nil {
		return nil
	}

	a.printResult(result)
	return a.offerSave(ctx, still, result)
}

// obtainStill gets an encoded still through the camera, falling back to
// file upload when the camera is unavailable or the user prefers it.
// A nil still with nil error means the user backed out.
func (a *App) obtainStill(ctx context.Context) (*capture.Still, error) {
	choice, err := GetChoice(a.reader, "Capture with camera or upload a file?", []string{"camera", "upload", "back"}, "camera", os.Stdout)
	if err != nil {
		return nil, err
	}

	switch choice {
	case "back":
		return nil, nil

	case "camera":
		if err := a.capture.StartLive(ctx); err != nil {
			if errors.Is(err, shared.ErrDeviceUnavailable) {
				printlnFn(shared.ErrDeviceUnavailable.Error())
				return a.obtainFromFile()
			}
			return nil, err
		}

		if _, err := getSimpleText(a.reader, "Camera is live. Press Enter to capture", os.Stdout); err != nil {
			a.capture.Cancel()
			return nil, err
		}

		still, err := a.capture.CaptureFrame()
		if err != nil {
			printlnFn("Capture failed:", err.Error())
			return nil, err
		}
		return still, nil

	default:
		return a.obtainFromFile()
	}
}

func (a *App) obtainFromFile() (*capture.Still, error) {
	path, err := getSimpleText(a.reader, "Path to an image file", os.Stdout)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Could not read file:", err.Error())
		return nil, err
	}

	still, err := a.capture.LoadFromFile(data)
	if err != nil {
		printlnFn(err.Error())
		return nil, err
	}
	return still, nil
}

func (a *App) printResult(r *analysis.Result) {
	printlnFn("")
	printlnFn("Skin type:  ", r.SkinType)
	printlnFn("Concerns:   ", strings.Join(r.Concerns, ", "))
	printlnFn(fmt.Sprintf("Skin score:  %d/100 (confidence %d%%)", r.Score, r.Confidence))
	printlnFn("Recommended products:  ", strings.Join(r.Recommendations.Products, "; "))
	printlnFn("Recommended treatments:", strings.Join(r.Recommendations.Treatments, "; "))
	printlnFn("Home remedies:         ", strings.Join(r.Recommendations.HomeRemedies, "; "))
	if r.NeedsDoctor {
		printlnFn("We recommend a consultation with a specialist. See 'consult'.")
	}
	printlnFn("")
}

func (a *App) offerSave(ctx context.Context, still *capture.Still, r *analysis.Result) error {
	save, err := GetChoice(a.reader, "Save this result to your account?", []string{"y", "n"}, "y", os.Stdout)
	if err != nil || save != "y" {
		return err
	}

	imageKey := ""
	if key, err := a.session.UploadStill(ctx, still.MIME, still.Data); err != nil {
		printlnFn("Image upload failed, saving the result without it:", err.Error())
	} else {
		imageKey = key
	}

	scan, err := a.session.SaveScan(ctx, wire.SaveScanRequest{
		SkinType:   r.SkinType,
		Concerns:   r.Concerns,
		Score:      r.Score,
		Confidence: r.Confidence,
		Recommendations: wire.Recommendations{
			Products:           r.Recommendations.Products,
			Treatments:         r.Recommendations.Treatments,
			HomeRemedies:       r.Recommendations.HomeRemedies,
			DoctorConsultation: r.NeedsDoctor,
		},
		ImageKey: imageKey,
	})
	if err != nil {
		printlnFn("Could not save the result:", err.Error())
		return err
	}
	printlnFn("Saved. Scan id:", scan.ID)

	if profileType := r.ProfileSkinType(); profileType != "" {
		apply, err := GetChoice(a.reader, "Set your profile skin type to "+profileType+"?", []string{"y", "n"}, "n", os.Stdout)
		if err != nil {
			return err
		}
		if apply == "y" {
			if _, err := a.session.UpdateProfile(ctx, wire.ProfilePatch{SkinType: &profileType}); err != nil {
				printlnFn("Could not update the profile:", err.Error())
				return err
			}
			printlnFn("Profile updated.")
		}
	}
	return nil
}
